//go:build windows

package windows

import (
	"log/slog"
	"sync"
	"syscall"
)

// syscall.NewCallback slots are never released, so the enumeration callbacks
// are created once and collect into package state guarded by enumMu.
var (
	enumMu      sync.Mutex
	enumFound   []uintptr
	enumParent  uintptr
	enumWindows = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		enumFound = append(enumFound, hwnd)
		return 1 // Continue enumeration
	})
	enumChildren = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		// EnumChildWindows visits all descendants; keep immediate children only
		parent, _, _ := procGetAncestor.Call(hwnd, GA_PARENT)
		if parent == enumParent {
			enumFound = append(enumFound, hwnd)
		}
		return 1
	})
)

// EnumWindows lists every top-level window in z-order
func (w *WindowsAPI) EnumWindows() []uintptr {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumFound = nil
	ret, _, err := procEnumWindows.Call(enumWindows, 0)
	if ret == 0 {
		w.log.Debug("EnumWindows failed", slog.Any("error", err))
		return nil
	}

	// Copy to avoid races with subsequent enumerations
	found := make([]uintptr, len(enumFound))
	copy(found, enumFound)

	return found
}

// ChildWindows lists the immediate children of hwnd in z-order
func (w *WindowsAPI) ChildWindows(hwnd uintptr) []uintptr {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumFound = nil
	enumParent = hwnd

	// EnumChildWindows returns 0 both on failure and when there are no children
	_, _, _ = procEnumChildWindows.Call(hwnd, enumChildren, 0)

	found := make([]uintptr, len(enumFound))
	copy(found, enumFound)

	return found
}
