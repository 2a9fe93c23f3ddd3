// Package window models live desktop windows: a handle wrapper whose accessors
// query the window manager on every call, and a Desktop that enumerates,
// filters and hit-tests the window hierarchy.
package window

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
)

// Window wraps a Handle. It caches nothing: every accessor re-queries the
// window manager, so two reads may differ if the window changed in between.
// Constructing a Window never fails; a stale handle surfaces ErrInvalidHandle
// on first query.
type Window struct {
	hwnd Handle
	api  interfaces.WindowAPI
	log  logger.LoggerInterface
}

// Handle returns the raw window handle.
func (w Window) Handle() Handle {
	return w.hwnd
}

// String renders the window as "[0x1A2B] title", leaving the title empty for stale handles.
func (w Window) String() string {
	return fmt.Sprintf("[%s] %s", w.hwnd, w.api.GetWindowText(uintptr(w.hwnd)))
}

func (w Window) with(h Handle) Window {
	return Window{hwnd: h, api: w.api, log: w.log}
}

func (w Window) valid() error {
	if w.hwnd == 0 || !w.api.IsWindow(uintptr(w.hwnd)) {
		return fmt.Errorf("%w: %s", ErrInvalidHandle, w.hwnd)
	}

	return nil
}

// Exists reports whether the handle still refers to a live window.
func (w Window) Exists() bool {
	return w.valid() == nil
}

// Title returns the current window text, empty if the window has none.
func (w Window) Title() (string, error) {
	if err := w.valid(); err != nil {
		return "", err
	}

	return w.api.GetWindowText(uintptr(w.hwnd)), nil
}

// ClassName returns the window class name.
func (w Window) ClassName() (string, error) {
	if err := w.valid(); err != nil {
		return "", err
	}

	return w.api.GetClassName(uintptr(w.hwnd)), nil
}

// Rect returns the bounding rectangle in screen coordinates.
func (w Window) Rect() (Rect, error) {
	if err := w.valid(); err != nil {
		return Rect{}, err
	}

	r, ok := w.api.GetWindowRect(uintptr(w.hwnd))
	if !ok {
		return Rect{}, fmt.Errorf("%w: %s", ErrInvalidHandle, w.hwnd)
	}

	return rectFrom(r), nil
}

// ClientRect returns the client-area rectangle. As with the native call, left
// and top are zero and right/bottom are the client width and height.
func (w Window) ClientRect() (Rect, error) {
	if err := w.valid(); err != nil {
		return Rect{}, err
	}

	r, ok := w.api.GetClientRect(uintptr(w.hwnd))
	if !ok {
		return Rect{}, fmt.Errorf("%w: %s", ErrInvalidHandle, w.hwnd)
	}

	return rectFrom(r), nil
}

// IsMinimized reports whether the window is iconic.
func (w Window) IsMinimized() bool {
	return w.api.IsIconic(uintptr(w.hwnd))
}

// IsVisible reports the WS_VISIBLE state of the window.
func (w Window) IsVisible() bool {
	return w.api.IsWindowVisible(uintptr(w.hwnd))
}

// IsForeground reports whether the window is the current foreground window.
func (w Window) IsForeground() bool {
	return w.hwnd != 0 && w.api.GetForegroundWindow() == uintptr(w.hwnd)
}

// Parent returns the parent window. ok is false for top-level windows.
func (w Window) Parent() (parent Window, ok bool, err error) {
	if err := w.valid(); err != nil {
		return Window{}, false, err
	}

	p := w.api.GetParent(uintptr(w.hwnd))
	if p == 0 {
		return Window{}, false, nil
	}

	return w.with(Handle(p)), true, nil
}

// Children returns the immediate child windows in the window manager's z-order.
func (w Window) Children() ([]Window, error) {
	if err := w.valid(); err != nil {
		return nil, err
	}

	return w.wrap(w.api.ChildWindows(uintptr(w.hwnd))), nil
}

// ProcessID returns the id of the process that created the window.
func (w Window) ProcessID() (uint32, error) {
	if err := w.valid(); err != nil {
		return 0, err
	}

	return w.api.GetWindowPid(uintptr(w.hwnd)), nil
}

func (w Window) wrap(hwnds []uintptr) []Window {
	out := make([]Window, 0, len(hwnds))
	for _, h := range hwnds {
		out = append(out, w.with(Handle(h)))
	}

	return out
}

// SetTitle sets the window text. It cannot change controls owned by another
// process; use SendText for those.
func (w Window) SetTitle(text string) bool {
	ok := w.api.SetWindowText(uintptr(w.hwnd), text)
	if !ok {
		w.log.Debug("SetWindowText failed", slog.String("hwnd", w.hwnd.String()))
	}

	return ok
}

// Move sets position and size in one SetWindowPos call.
func (w Window) Move(x, y, width, height int, flags SWPFlag) bool {
	w.log.Debug("Moving window",
		slog.String("hwnd", w.hwnd.String()),
		slog.Int("x", x),
		slog.Int("y", y),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Uint64("flags", uint64(flags)),
	)

	ok := w.api.SetWindowPos(uintptr(w.hwnd), x, y, width, height, uint32(flags))
	if !ok {
		w.log.Debug("SetWindowPos failed", slog.String("hwnd", w.hwnd.String()))
	}

	return ok
}

// ShowWindow applies cmd and returns whether the window was previously visible.
func (w Window) ShowWindow(cmd ShowCommand) bool {
	return w.api.ShowWindow(uintptr(w.hwnd), int(cmd))
}

// Show displays the window at its normal size and position.
func (w Window) Show() bool { return w.ShowWindow(SW_SHOWNORMAL) }

// Hide hides the window.
func (w Window) Hide() bool { return w.ShowWindow(SW_HIDE) }

// Maximize maximizes and activates the window.
func (w Window) Maximize() bool { return w.ShowWindow(SW_MAXIMIZE) }

// Minimize minimizes the window.
func (w Window) Minimize() bool { return w.ShowWindow(SW_MINIMIZE) }

// Restore activates the window and restores it from minimized or maximized state.
func (w Window) Restore() bool { return w.ShowWindow(SW_RESTORE) }

// BringToFront makes the window the foreground window.
func (w Window) BringToFront() bool {
	ok := w.api.SetForegroundWindow(uintptr(w.hwnd))
	if !ok {
		w.log.Debug("SetForegroundWindow failed", slog.String("hwnd", w.hwnd.String()))
	}

	return ok
}

// Focus gives the window keyboard focus. It is a no-op when the window is
// already in the foreground.
func (w Window) Focus() bool {
	if w.IsForeground() {
		return true
	}

	return w.api.SetFocus(uintptr(w.hwnd))
}

// Close sends WM_CLOSE and waits for the window to process it.
func (w Window) Close() {
	w.log.Debug("Closing window", slog.String("hwnd", w.hwnd.String()))
	w.SendMessage(WM_CLOSE, 0, 0)
}

// SendMessage delivers msg synchronously and returns the window procedure's result.
// It blocks until the target's message loop handles the message, which may be forever
// if the target is hung.
func (w Window) SendMessage(msg uint32, wparam, lparam uintptr) uintptr {
	w.log.Trace("SendMessage",
		slog.String("hwnd", w.hwnd.String()),
		slog.String("msg", MessageName(msg)),
	)

	return w.api.SendMessage(uintptr(w.hwnd), msg, wparam, lparam)
}

// PostMessage enqueues msg and returns without waiting for delivery.
func (w Window) PostMessage(msg uint32, wparam uintptr) bool {
	return w.Post(msg, wparam, 0)
}

// Post is PostMessage with an lparam.
func (w Window) Post(msg uint32, wparam, lparam uintptr) bool {
	w.log.Trace("PostMessage",
		slog.String("hwnd", w.hwnd.String()),
		slog.String("msg", MessageName(msg)),
	)

	ok := w.api.PostMessage(uintptr(w.hwnd), msg, wparam, lparam)
	if !ok {
		w.log.Debug("PostMessage failed",
			slog.String("hwnd", w.hwnd.String()),
			slog.String("msg", MessageName(msg)),
		)
	}

	return ok
}

// Click posts a left button press and release at the client origin.
func (w Window) Click() bool {
	down := w.PostMessage(WM_LBUTTONDOWN, 0)
	up := w.PostMessage(WM_LBUTTONUP, 0)
	return down && up
}

// SendText replaces the window text with WM_SETTEXT. Unlike SetTitle this
// works on controls in other processes.
func (w Window) SendText(text string) uintptr {
	w.log.Trace("SendText", slog.String("hwnd", w.hwnd.String()))
	return w.api.SendText(uintptr(w.hwnd), text)
}
