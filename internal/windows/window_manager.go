//go:build windows

package windows

import (
	"log/slog"
	"syscall"
	"unsafe"
)

// SetWindowText sets the text of a window owned by this process or a top-level window
func (w *WindowsAPI) SetWindowText(hwnd uintptr, text string) bool {
	ptr, err := syscall.UTF16PtrFromString(text)
	if err != nil {
		w.log.Debug("Invalid window text", slog.Any("error", err))
		return false
	}

	ret, _, err := procSetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(ptr)))
	if ret == 0 {
		w.log.Debug("SetWindowTextW failed", slog.Uint64("hwnd", uint64(hwnd)), slog.Any("error", err))
		return false
	}

	return true
}

// SetWindowPos moves and resizes a window without changing its z-order position
func (w *WindowsAPI) SetWindowPos(hwnd uintptr, x, y, width, height int, flags uint32) bool {
	ret, _, err := procSetWindowPos.Call(
		hwnd,
		0, // HWND_TOP; ignored unless the caller clears SWP_NOZORDER
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		uintptr(flags),
	)

	if ret == 0 {
		w.log.Debug("SetWindowPos failed", slog.Uint64("hwnd", uint64(hwnd)), slog.Any("error", err))
		return false
	}

	return true
}

// ShowWindow returns whether the window was previously visible
func (w *WindowsAPI) ShowWindow(hwnd uintptr, cmd int) bool {
	ret, _, _ := procShowWindow.Call(hwnd, uintptr(cmd))
	return ret != 0
}

// SetForegroundWindow brings the window's thread to the foreground and activates it
func (w *WindowsAPI) SetForegroundWindow(hwnd uintptr) bool {
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	return ret != 0
}

// SetFocus gives keyboard focus to a window, using the AttachThreadInput
// technique when the window belongs to another thread's input queue
func (w *WindowsAPI) SetFocus(hwnd uintptr) bool {
	ourThreadID, _, _ := procGetCurrentThreadId.Call()
	targetThreadID, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)

	if targetThreadID == 0 {
		w.log.Debug("Could not get target thread ID", slog.Uint64("hwnd", uint64(hwnd)))
		return false
	}

	if targetThreadID != ourThreadID {
		w.log.Debug("Attaching threads",
			slog.Uint64("ourThreadID", uint64(ourThreadID)),
			slog.Uint64("targetThreadID", uint64(targetThreadID)))

		ret, _, _ := procAttachThreadInput.Call(ourThreadID, targetThreadID, 1)
		if ret == 0 {
			w.log.Warn("AttachThreadInput failed")
			return false
		}

		defer func() {
			if ret, _, _ := procAttachThreadInput.Call(ourThreadID, targetThreadID, 0); ret == 0 {
				w.log.Warn("Failed to detach threads")
			}
		}()
	}

	// SetFocus returns the previously focused window, 0 on failure or if none had focus
	prev, _, err := procSetFocus.Call(hwnd)
	if prev == 0 && err != syscall.Errno(0) {
		w.log.Debug("SetFocus failed", slog.Uint64("hwnd", uint64(hwnd)), slog.Any("error", err))
		return false
	}

	return true
}

// SendMessage blocks until the target window procedure returns
func (w *WindowsAPI) SendMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	ret, _, _ := procSendMessageW.Call(hwnd, uintptr(msg), wparam, lparam)
	return ret
}

// SendText sends WM_SETTEXT, which also reaches controls in other processes
func (w *WindowsAPI) SendText(hwnd uintptr, text string) uintptr {
	ptr, err := syscall.UTF16PtrFromString(text)
	if err != nil {
		w.log.Debug("Invalid window text", slog.Any("error", err))
		return 0
	}

	ret, _, _ := procSendMessageW.Call(hwnd, WM_SETTEXT, 0, uintptr(unsafe.Pointer(ptr)))
	return ret
}

// PostMessage places a message in the window's queue and returns immediately
func (w *WindowsAPI) PostMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) bool {
	ret, _, err := procPostMessageW.Call(hwnd, uintptr(msg), wparam, lparam)
	if ret == 0 {
		w.log.Debug("PostMessage failed",
			slog.Uint64("hwnd", uint64(hwnd)),
			slog.Uint64("msg", uint64(msg)),
			slog.Any("error", err))
		return false
	}

	return true
}
