package window

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
)

// Desktop is the root of the window hierarchy. It holds no window state; every
// call re-enumerates the live window set, so results are best effort over a
// moving target.
type Desktop struct {
	api interfaces.WindowAPI
	log logger.LoggerInterface
}

// NewDesktop creates a Desktop over the given window API.
func NewDesktop(api interfaces.WindowAPI, log logger.LoggerInterface) *Desktop {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Desktop{api: api, log: log}
}

// Window wraps a raw handle. It does not check that the window exists.
func (d *Desktop) Window(h Handle) Window {
	return Window{hwnd: h, api: d.api, log: d.log}
}

// WindowFromString wraps a handle given as hex text.
func (d *Desktop) WindowFromString(s string) (Window, error) {
	h, err := ParseHandle(s)
	if err != nil {
		return Window{}, err
	}

	return d.Window(h), nil
}

// Matcher decides whether an enumerated window is kept. An error means the
// window could not be queried and is skipped.
type Matcher func(Window) (bool, error)

// Windows lazily yields the top-level windows accepted by match (all of them
// when match is nil). Each iteration re-enumerates.
func (d *Desktop) Windows(match Matcher) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for _, h := range d.api.EnumWindows() {
			w := d.Window(Handle(h))

			if match != nil {
				ok, err := match(w)
				if err != nil {
					d.log.Trace("Enumeration skipped window",
						slog.String("hwnd", w.hwnd.String()),
						slog.Any("error", err),
					)
					continue
				}

				if !ok {
					continue
				}
			}

			if !yield(w) {
				return
			}
		}
	}
}

// AllWindows returns every top-level window, unfiltered.
func (d *Desktop) AllWindows() []Window {
	return slices.Collect(d.Windows(nil))
}

// WindowsByTitle returns windows whose title contains sub (case-sensitive).
func (d *Desktop) WindowsByTitle(sub string) []Window {
	return slices.Collect(d.Windows(TitleContains(sub)))
}

// WindowsByClass returns windows whose class name contains sub (case-sensitive).
func (d *Desktop) WindowsByClass(sub string) []Window {
	return slices.Collect(d.Windows(ClassContains(sub)))
}

// WindowsByProcessID returns windows owned by pid.
func (d *Desktop) WindowsByProcessID(pid uint32) []Window {
	return slices.Collect(d.Windows(ProcessIs(pid)))
}

// TopLevelVisibleWindows returns top-level windows that are currently visible.
func (d *Desktop) TopLevelVisibleWindows() []Window {
	return slices.Collect(d.Windows(Visible()))
}

// TitleContains matches windows whose title contains sub.
func TitleContains(sub string) Matcher {
	return func(w Window) (bool, error) {
		title, err := w.Title()
		if err != nil {
			return false, err
		}

		return strings.Contains(title, sub), nil
	}
}

// ClassContains matches windows whose class name contains sub.
func ClassContains(sub string) Matcher {
	return func(w Window) (bool, error) {
		class, err := w.ClassName()
		if err != nil {
			return false, err
		}

		return strings.Contains(class, sub), nil
	}
}

// ProcessIs matches windows owned by pid.
func ProcessIs(pid uint32) Matcher {
	return func(w Window) (bool, error) {
		p, err := w.ProcessID()
		if err != nil {
			return false, err
		}

		return p == pid, nil
	}
}

// Visible matches visible windows.
func Visible() Matcher {
	return func(w Window) (bool, error) {
		return w.IsVisible(), nil
	}
}

// All matches windows accepted by every matcher.
func All(matchers ...Matcher) Matcher {
	return func(w Window) (bool, error) {
		for _, m := range matchers {
			ok, err := m(w)
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil
	}
}

// Foreground returns the current foreground window, if any.
func (d *Desktop) Foreground() (Window, bool) {
	h := d.api.GetForegroundWindow()
	if h == 0 {
		return Window{}, false
	}

	return d.Window(Handle(h)), true
}

// CursorPos returns the mouse cursor position in screen coordinates.
func (d *Desktop) CursorPos() (x, y int, ok bool) {
	return d.api.GetCursorPos()
}

// TopLevelAt returns the top-level window containing the screen point, found
// by climbing the parents of the deepest window at that point.
func (d *Desktop) TopLevelAt(x, y int) (Window, bool) {
	h := d.api.WindowFromPoint(x, y)
	if h == 0 {
		return Window{}, false
	}

	for {
		p := d.api.GetParent(h)
		if p == 0 {
			return d.Window(Handle(h)), true
		}

		h = p
	}
}
