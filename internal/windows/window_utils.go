//go:build windows

package windows

import (
	"log/slog"
	"syscall"
	"unsafe"

	"github.com/Norgate-AV/winspect/internal/interfaces"
)

// IsWindow checks if a window handle is valid
func (w *WindowsAPI) IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// GetWindowText retrieves the text of a window, sized to its current length
func (w *WindowsAPI) GetWindowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}

	buf := make([]uint16, n+1)
	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}

// GetClassName retrieves the class name of a window
func (w *WindowsAPI) GetClassName(hwnd uintptr) string {
	buf := make([]uint16, MAX_CLASS_NAME)

	ret, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}

// GetWindowRect retrieves the bounding rectangle in screen coordinates
func (w *WindowsAPI) GetWindowRect(hwnd uintptr) (interfaces.Rect, bool) {
	var r RECT

	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		w.log.Trace("GetWindowRect failed", slog.Uint64("hwnd", uint64(hwnd)), slog.Any("error", err))
		return interfaces.Rect{}, false
	}

	return r.toRect(), true
}

// GetClientRect retrieves the client area rectangle
func (w *WindowsAPI) GetClientRect(hwnd uintptr) (interfaces.Rect, bool) {
	var r RECT

	ret, _, err := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		w.log.Trace("GetClientRect failed", slog.Uint64("hwnd", uint64(hwnd)), slog.Any("error", err))
		return interfaces.Rect{}, false
	}

	return r.toRect(), true
}

// IsIconic checks if a window is minimized
func (w *WindowsAPI) IsIconic(hwnd uintptr) bool {
	ret, _, _ := procIsIconic.Call(hwnd)
	return ret != 0
}

// IsWindowVisible checks if a window is visible
func (w *WindowsAPI) IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// GetForegroundWindow returns the window the user is currently working with
func (w *WindowsAPI) GetForegroundWindow() uintptr {
	ret, _, _ := procGetForegroundWindow.Call()
	return ret
}

// GetParent returns the parent window, or 0 for a top-level window. Owners of
// top-level popups are not parents.
func (w *WindowsAPI) GetParent(hwnd uintptr) uintptr {
	parent, _, _ := procGetAncestor.Call(hwnd, GA_PARENT)
	if parent == 0 {
		return 0
	}

	desktop, _, _ := procGetDesktopWindow.Call()
	if parent == desktop {
		return 0
	}

	return parent
}

// GetWindowPid retrieves the process ID of a window
func (w *WindowsAPI) GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if ret == 0 {
		return 0
	}

	return pid
}

// WindowFromPoint returns the deepest window at a screen point
func (w *WindowsAPI) WindowFromPoint(x, y int) uintptr {
	ret, _, _ := procWindowFromPoint.Call(POINT{X: int32(x), Y: int32(y)}.pack())
	return ret
}

// GetCursorPos returns the mouse position in screen coordinates
func (w *WindowsAPI) GetCursorPos() (int, int, bool) {
	var p POINT

	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		w.log.Debug("GetCursorPos failed", slog.Any("error", err))
		return 0, 0, false
	}

	return int(p.X), int(p.Y), true
}
