// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

// Rect is a native RECT in screen coordinates.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// WindowAPI is the set of native window-manager calls the window model is built on.
// Every method is a direct, blocking call; nothing is cached.
type WindowAPI interface {
	// Queries
	IsWindow(hwnd uintptr) bool
	GetWindowText(hwnd uintptr) string
	GetClassName(hwnd uintptr) string
	GetWindowRect(hwnd uintptr) (Rect, bool)
	GetClientRect(hwnd uintptr) (Rect, bool)
	IsIconic(hwnd uintptr) bool
	IsWindowVisible(hwnd uintptr) bool
	GetForegroundWindow() uintptr
	GetParent(hwnd uintptr) uintptr
	GetWindowPid(hwnd uintptr) uint32
	WindowFromPoint(x, y int) uintptr
	GetCursorPos() (x, y int, ok bool)

	// Enumeration
	EnumWindows() []uintptr
	ChildWindows(hwnd uintptr) []uintptr

	// Actions
	SetWindowText(hwnd uintptr, text string) bool
	SetWindowPos(hwnd uintptr, x, y, width, height int, flags uint32) bool
	ShowWindow(hwnd uintptr, cmd int) bool
	SetForegroundWindow(hwnd uintptr) bool
	SetFocus(hwnd uintptr) bool

	// Messaging
	SendMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr
	SendText(hwnd uintptr, text string) uintptr
	PostMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) bool
}
