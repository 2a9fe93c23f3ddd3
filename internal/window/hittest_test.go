package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winspect/internal/testutil"
	"github.com/Norgate-AV/winspect/internal/window"
)

func TestDesktop_HitTest(t *testing.T) {
	t.Parallel()

	// A child that sticks out of its parent: the status bar does not contain
	// (400, 300), so this grip must never be reported there.
	api := testutil.SampleDesktop().
		WithWindow(0x121, testutil.NotepadStatus, "", "SizeGrip", testutil.R(300, 200, 500, 600))
	desktop := newDesktop(api)
	notepad := desktop.Window(testutil.Notepad)

	tests := []struct {
		name     string
		root     window.Window
		x, y     int
		expected []window.Handle
	}{
		{
			name:     "nested children in pre-order",
			root:     notepad,
			x:        780,
			y:        100,
			expected: []window.Handle{testutil.NotepadEdit, testutil.NotepadScroll},
		},
		{
			name:     "edges are inclusive",
			root:     notepad,
			x:        790,
			y:        560,
			expected: []window.Handle{testutil.NotepadEdit, testutil.NotepadScroll},
		},
		{
			name:     "excluded parent prunes its subtree",
			root:     notepad,
			x:        400,
			y:        300,
			expected: []window.Handle{testutil.NotepadEdit},
		},
		{
			name:     "grip reachable through its parent",
			root:     notepad,
			x:        400,
			y:        580,
			expected: []window.Handle{testutil.NotepadStatus, 0x121},
		},
		{
			name:     "root is not tested",
			root:     notepad,
			x:        5,
			y:        5,
			expected: []window.Handle{},
		},
		{
			name:     "outside every window",
			root:     desktop.Window(testutil.Calculator),
			x:        -10,
			y:        -10,
			expected: []window.Handle{},
		},
		{
			name:     "stale root",
			root:     desktop.Window(0xBAD),
			x:        0,
			y:        0,
			expected: []window.Handle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hits := desktop.HitTest(tt.root, tt.x, tt.y)
			assert.Equal(t, tt.expected, handlesOf(hits))

			for _, h := range hits {
				r, err := h.Rect()
				require.NoError(t, err)
				assert.True(t, r.Contains(tt.x, tt.y), "%s at %s", h.Handle(), r)
			}
		})
	}
}

func TestDesktop_HitTest_SkipsVanishedChildren(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop().Destroy(testutil.NotepadEdit)
	desktop := newDesktop(api)

	assert.Empty(t, desktop.HitTest(desktop.Window(testutil.Notepad), 780, 100))
}

type visit struct {
	depth  int
	handle window.Handle
}

func walk(desktop *window.Desktop, root window.Window, maxDepth int) []visit {
	var out []visit
	for depth, w := range desktop.WalkDepth(root, maxDepth) {
		out = append(out, visit{depth, w.Handle()})
	}

	return out
}

func TestDesktop_Walk(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())
	notepad := desktop.Window(testutil.Notepad)

	full := []visit{
		{1, testutil.NotepadEdit},
		{2, testutil.NotepadScroll},
		{1, testutil.NotepadStatus},
	}

	assert.Equal(t, full, walk(desktop, notepad, 0))
	assert.Equal(t, full, walk(desktop, notepad, 5))
	assert.Equal(t, []visit{{1, testutil.NotepadEdit}, {1, testutil.NotepadStatus}}, walk(desktop, notepad, 1))
	assert.Empty(t, walk(desktop, desktop.Window(testutil.NotepadScroll), 0))

	var viaWalk []visit
	for depth, w := range desktop.Walk(notepad) {
		viaWalk = append(viaWalk, visit{depth, w.Handle()})
	}
	assert.Equal(t, full, viaWalk)
}

func TestDesktop_Walk_StopsEarly(t *testing.T) {
	t.Parallel()

	desktop := newDesktop(testutil.SampleDesktop())

	count := 0
	for range desktop.Walk(desktop.Window(testutil.Notepad)) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestDesktop_Pick(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop()
	desktop := newDesktop(api)

	assert.Equal(t,
		[]window.Handle{testutil.Notepad, testutil.NotepadEdit, testutil.NotepadScroll},
		handlesOf(desktop.Pick(780, 100)),
	)

	assert.Equal(t,
		[]window.Handle{testutil.Calculator, testutil.CalcOne},
		handlesOf(desktop.Pick(1050, 350)),
	)

	assert.Empty(t, desktop.Pick(10, 1060), "hidden taskbar is not picked")

	api.WithVisible(testutil.Taskbar, true)
	assert.Equal(t, []window.Handle{testutil.Taskbar}, handlesOf(desktop.Pick(10, 1060)))
}

func TestDesktop_Pick_OverlappingWindows(t *testing.T) {
	t.Parallel()

	api := testutil.SampleDesktop().
		WithWindow(0x400, 0, "Overlay", "Overlay", testutil.R(700, 0, 1000, 100))
	desktop := newDesktop(api)

	// Both top-level windows contain the point; each is followed by its own hits
	assert.Equal(t,
		[]window.Handle{testutil.Notepad, testutil.NotepadEdit, testutil.NotepadScroll, 0x400},
		handlesOf(desktop.Pick(780, 60)),
	)
}
