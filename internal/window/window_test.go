package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winspect/internal/testutil"
	"github.com/Norgate-AV/winspect/internal/window"
)

func TestWindow_Accessors(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())
	w := desktop.Window(testutil.Notepad)

	assert.Equal(t, "[0x100] Untitled - Notepad", w.String())
	assert.True(t, w.Exists())

	title, err := w.Title()
	require.NoError(t, err)
	assert.Equal(t, "Untitled - Notepad", title)

	class, err := w.ClassName()
	require.NoError(t, err)
	assert.Equal(t, "Notepad", class)

	r, err := w.Rect()
	require.NoError(t, err)
	assert.Equal(t, window.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}, r)

	pid, err := w.ProcessID()
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), pid)

	assert.True(t, w.IsVisible())
	assert.False(t, w.IsMinimized())
	assert.True(t, w.IsForeground())
}

func TestWindow_EmptyTitleIsNotAnError(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())

	title, err := desktop.Window(testutil.NotepadEdit).Title()
	require.NoError(t, err)
	assert.Empty(t, title)
}

func TestWindow_ClientRect(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())

	r, err := desktop.Window(testutil.CalcEquals).ClientRect()
	require.NoError(t, err)
	assert.Equal(t, window.Rect{Right: 90, Bottom: 90}, r)
}

func TestWindow_StaleHandle(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop().Destroy(testutil.Calculator)
	desktop := newDesktop(api)

	for _, h := range []window.Handle{0, testutil.Calculator, 0xBAD} {
		w := desktop.Window(h)

		t.Run(h.String(), func(t *testing.T) {
			t.Parallel()

			assert.False(t, w.Exists())

			_, err := w.Title()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			_, err = w.ClassName()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			_, err = w.Rect()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			_, err = w.ClientRect()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			_, _, err = w.Parent()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			_, err = w.Children()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			_, err = w.ProcessID()
			assert.ErrorIs(t, err, window.ErrInvalidHandle)

			assert.False(t, w.IsVisible())
			assert.False(t, w.IsMinimized())
		})
	}
}

func TestWindow_ParentChildConsistency(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())

	for _, top := range desktop.AllWindows() {
		_, ok, err := top.Parent()
		require.NoError(t, err)
		assert.False(t, ok, "top-level %s has a parent", top.Handle())

		for _, w := range desktop.Walk(top) {
			children, err := w.Children()
			require.NoError(t, err)

			for _, c := range children {
				p, ok, err := c.Parent()
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, w.Handle(), p.Handle())
			}
		}
	}
}

func TestWindow_ChildrenAreImmediateAndOrdered(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())

	children, err := desktop.Window(testutil.Notepad).Children()
	require.NoError(t, err)
	assert.Equal(t, []window.Handle{testutil.NotepadEdit, testutil.NotepadStatus}, handlesOf(children))

	leaf, err := desktop.Window(testutil.NotepadScroll).Children()
	require.NoError(t, err)
	assert.Empty(t, leaf)
}

func TestWindow_Move(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop()
	w := newDesktop(api).Window(testutil.Calculator)

	require.True(t, w.Move(10, 20, 300, 200, window.SWP_SHOWWINDOW))

	require.Len(t, api.SetWindowPosCalls, 1)
	assert.Equal(t, testutil.SetWindowPosCall{
		Hwnd: testutil.Calculator, X: 10, Y: 20, Width: 300, Height: 200, Flags: uint32(window.SWP_SHOWWINDOW),
	}, api.SetWindowPosCalls[0])

	r, err := w.Rect()
	require.NoError(t, err)
	assert.Equal(t, window.Rect{Left: 10, Top: 20, Right: 310, Bottom: 220}, r)

	// Size kept with SWP_NOSIZE
	require.True(t, w.Move(0, 0, 1, 1, window.SWP_NOSIZE|window.SWP_NOZORDER))
	r, err = w.Rect()
	require.NoError(t, err)
	assert.Equal(t, window.Rect{Left: 0, Top: 0, Right: 300, Bottom: 200}, r)

	assert.False(t, newDesktop(api).Window(0xBAD).Move(0, 0, 1, 1, window.SWP_SHOWWINDOW))
}

func TestWindow_ShowState(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop()
	desktop := newDesktop(api)
	taskbar := desktop.Window(testutil.Taskbar)
	notepad := desktop.Window(testutil.Notepad)

	assert.False(t, taskbar.Show(), "taskbar was hidden")
	assert.True(t, taskbar.IsVisible())

	assert.True(t, notepad.Hide())
	assert.False(t, notepad.IsVisible())

	notepad.Minimize()
	assert.True(t, notepad.IsMinimized())
	assert.True(t, notepad.IsVisible())

	assert.True(t, notepad.Restore())
	assert.False(t, notepad.IsMinimized())

	notepad.Maximize()

	assert.Equal(t, []testutil.ShowWindowCall{
		{Hwnd: testutil.Taskbar, Cmd: int(window.SW_SHOWNORMAL)},
		{Hwnd: testutil.Notepad, Cmd: int(window.SW_HIDE)},
		{Hwnd: testutil.Notepad, Cmd: int(window.SW_MINIMIZE)},
		{Hwnd: testutil.Notepad, Cmd: int(window.SW_RESTORE)},
		{Hwnd: testutil.Notepad, Cmd: int(window.SW_MAXIMIZE)},
	}, api.ShowWindowCalls)
}

func TestWindow_BringToFrontAndFocus(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop()
	desktop := newDesktop(api)

	assert.True(t, desktop.Window(testutil.Notepad).Focus())
	assert.Empty(t, api.SetFocusCalls, "focusing the foreground window is a no-op")

	assert.True(t, desktop.Window(testutil.CalcEquals).Focus())
	assert.Equal(t, []uintptr{testutil.CalcEquals}, api.SetFocusCalls)

	calc := desktop.Window(testutil.Calculator)
	require.True(t, calc.BringToFront())
	assert.True(t, calc.IsForeground())
	assert.False(t, desktop.Window(testutil.Notepad).IsForeground())

	assert.False(t, desktop.Window(0xBAD).BringToFront())
}

func TestWindow_Close(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop()
	desktop := newDesktop(api)

	desktop.Window(testutil.Calculator).Close()

	assert.Equal(t, []testutil.MessageCall{{Hwnd: testutil.Calculator, Msg: window.WM_CLOSE}}, api.SentMessages)
	assert.False(t, desktop.Window(testutil.Calculator).Exists())
	assert.False(t, desktop.Window(testutil.CalcEquals).Exists(), "children go with their parent")
	assert.Equal(t, []window.Handle{testutil.Notepad, testutil.Taskbar}, handlesOf(desktop.AllWindows()))
}

func TestWindow_Messages(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop().WithSendMessageResult(42)
	desktop := newDesktop(api)
	button := desktop.Window(testutil.CalcEquals)

	assert.Equal(t, uintptr(42), button.SendMessage(window.WM_COMMAND, 1, 2))
	assert.Equal(t, []testutil.MessageCall{
		{Hwnd: testutil.CalcEquals, Msg: window.WM_COMMAND, WParam: 1, LParam: 2},
	}, api.SentMessages)

	assert.True(t, button.Click())
	assert.True(t, button.PostMessage(window.WM_CHAR, 'a'))
	assert.True(t, button.Post(window.WM_KEYDOWN, 0x41, 0x1E0001))

	assert.Equal(t, []testutil.MessageCall{
		{Hwnd: testutil.CalcEquals, Msg: window.WM_LBUTTONDOWN},
		{Hwnd: testutil.CalcEquals, Msg: window.WM_LBUTTONUP},
		{Hwnd: testutil.CalcEquals, Msg: window.WM_CHAR, WParam: 'a'},
		{Hwnd: testutil.CalcEquals, Msg: window.WM_KEYDOWN, WParam: 0x41, LParam: 0x1E0001},
	}, api.PostedMessages)

	stale := desktop.Window(0xBAD)
	assert.False(t, stale.PostMessage(window.WM_CLOSE, 0))
	assert.False(t, stale.Click())
}

func TestWindow_SetText(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop()
	desktop := newDesktop(api)
	status := desktop.Window(testutil.NotepadStatus)

	require.True(t, status.SetTitle("Saving"))
	title, err := status.Title()
	require.NoError(t, err)
	assert.Equal(t, "Saving", title)

	assert.Equal(t, uintptr(1), status.SendText("Saved"))
	title, err = status.Title()
	require.NoError(t, err)
	assert.Equal(t, "Saved", title)

	stale := desktop.Window(0xBAD)
	assert.False(t, stale.SetTitle("x"))
	assert.Equal(t, uintptr(0), stale.SendText("x"))
}
