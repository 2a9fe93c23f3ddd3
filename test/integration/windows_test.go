//go:build integration && windows

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winspect/internal/logger"
	"github.com/Norgate-AV/winspect/internal/window"
	"github.com/Norgate-AV/winspect/internal/windows"
)

// newDesktop opens the real desktop, logging to a temporary directory
func newDesktop(t *testing.T) *window.Desktop {
	t.Helper()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: t.TempDir(), Verbose: testing.Verbose()})
	require.NoError(t, err)
	t.Cleanup(log.Close)

	return window.NewDesktop(windows.NewWindowsAPI(log), log)
}

// firstVisible returns a visible top-level window with a non-empty rectangle
func firstVisible(t *testing.T, desktop *window.Desktop) window.Window {
	t.Helper()

	for _, w := range desktop.TopLevelVisibleWindows() {
		r, err := w.Rect()
		if err == nil && r.Width() > 0 && r.Height() > 0 {
			return w
		}
	}

	t.Skip("no visible top-level window on this desktop")
	return window.Window{}
}

func TestIntegration_EnumeratesTopLevelWindows(t *testing.T) {
	desktop := newDesktop(t)

	all := desktop.AllWindows()
	require.NotEmpty(t, all, "an interactive session always has top-level windows")

	assert.Len(t, desktop.WindowsByTitle(""), len(all), "empty title filter matches every window")
	assert.LessOrEqual(t, len(desktop.TopLevelVisibleWindows()), len(all))

	for _, w := range all[:min(len(all), 20)] {
		_, hasParent, err := w.Parent()
		if err != nil {
			continue // closed since enumeration
		}
		assert.False(t, hasParent, "top-level window %s has a parent", w.Handle())
	}
}

func TestIntegration_ParentChildConsistency(t *testing.T) {
	desktop := newDesktop(t)
	checked := 0

	for _, w := range desktop.TopLevelVisibleWindows() {
		children, err := w.Children()
		if err != nil {
			continue
		}

		for _, c := range children {
			p, ok, err := c.Parent()
			if err != nil {
				continue
			}

			require.True(t, ok, "child %s of %s reports no parent", c.Handle(), w.Handle())
			assert.Equal(t, w.Handle(), p.Handle())
			checked++
		}

		if checked > 50 {
			break
		}
	}

	if checked == 0 {
		t.Skip("no child windows to check")
	}
}

func TestIntegration_Properties(t *testing.T) {
	desktop := newDesktop(t)
	w := firstVisible(t, desktop)

	props, err := w.Properties()
	require.NoError(t, err)

	handle, ok := props.Get(window.PropHandle)
	require.True(t, ok)
	assert.Equal(t, w.Handle().String(), handle)

	visible, _ := props.Get(window.PropVisible)
	assert.Equal(t, "true", visible)

	class, _ := props.Get(window.PropClassName)
	assert.NotEmpty(t, class, "every window has a class")
}

func TestIntegration_NullHandle(t *testing.T) {
	desktop := newDesktop(t)
	w := desktop.Window(0)

	_, err := w.Title()
	assert.ErrorIs(t, err, window.ErrInvalidHandle)

	_, err = w.Properties()
	assert.ErrorIs(t, err, window.ErrInvalidHandle)
}

func TestIntegration_HitTestPruning(t *testing.T) {
	desktop := newDesktop(t)
	w := firstVisible(t, desktop)

	r, err := w.Rect()
	require.NoError(t, err)

	x, y := r.Left+r.Width()/2, r.Top+r.Height()/2

	for _, hit := range desktop.HitTest(w, x, y) {
		hr, err := hit.Rect()
		if err != nil {
			continue
		}
		assert.True(t, hr.Contains(x, y), "%s at %s does not contain (%d, %d)", hit.Handle(), hr, x, y)
	}

	assert.Empty(t, desktop.HitTest(w, r.Right+10_000, r.Bottom+10_000), "no child contains a point far outside its parent")
}

func TestIntegration_CursorAndTopLevel(t *testing.T) {
	desktop := newDesktop(t)

	x, y, ok := desktop.CursorPos()
	if !ok {
		t.Skip("cursor position unavailable, e.g. on a locked or headless session")
	}

	top, ok := desktop.TopLevelAt(x, y)
	if !ok {
		t.Skip("no window under the cursor")
	}

	_, hasParent, err := top.Parent()
	require.NoError(t, err)
	assert.False(t, hasParent)
}

func TestIntegration_Snapshot(t *testing.T) {
	desktop := newDesktop(t)

	first := desktop.Snapshot()
	require.NotEmpty(t, first)

	// Two immediate snapshots may differ by transient windows, never by everything
	changes := window.Diff(first, desktop.Snapshot())
	assert.Less(t, len(changes), len(first))
}
