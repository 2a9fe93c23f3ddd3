package testutil

import (
	"slices"

	"github.com/Norgate-AV/winspect/internal/interfaces"
)

const (
	wmClose = 0x0010

	swHide          = 0
	swShowNormal    = 1
	swShowMinimized = 2
	swMaximize      = 3
	swShow          = 5
	swMinimize      = 6
	swRestore       = 9

	swpNoSize = 0x0001
	swpNoMove = 0x0002
)

// FakeWindow is one window in a MockWindowAPI tree.
type FakeWindow struct {
	Title     string
	Class     string
	Rect      interfaces.Rect
	Client    interfaces.Rect
	Visible   bool
	Minimized bool
	Pid       uint32
	Parent    uintptr
	Children  []uintptr
}

// MockWindowAPI is an in-memory window tree implementing interfaces.WindowAPI.
// It records all mutating calls for verification.
type MockWindowAPI struct {
	Windows        map[uintptr]*FakeWindow
	TopLevel       []uintptr
	ForegroundHwnd uintptr
	CursorX        int
	CursorY        int
	CursorOK       bool

	SendMessageResult uintptr

	SetWindowPosCalls  []SetWindowPosCall
	ShowWindowCalls    []ShowWindowCall
	SetForegroundCalls []uintptr
	SetFocusCalls      []uintptr
	SentMessages       []MessageCall
	PostedMessages     []MessageCall
	EnumWindowsCalls   int
}

type SetWindowPosCall struct {
	Hwnd   uintptr
	X, Y   int
	Width  int
	Height int
	Flags  uint32
}

type ShowWindowCall struct {
	Hwnd uintptr
	Cmd  int
}

type MessageCall struct {
	Hwnd   uintptr
	Msg    uint32
	WParam uintptr
	LParam uintptr
}

func NewMockWindowAPI() *MockWindowAPI {
	return &MockWindowAPI{
		Windows:            make(map[uintptr]*FakeWindow),
		TopLevel:           []uintptr{},
		SetWindowPosCalls:  []SetWindowPosCall{},
		ShowWindowCalls:    []ShowWindowCall{},
		SetForegroundCalls: []uintptr{},
		SetFocusCalls:      []uintptr{},
		SentMessages:       []MessageCall{},
		PostedMessages:     []MessageCall{},
	}
}

// R is shorthand for an interfaces.Rect.
func R(left, top, right, bottom int) interfaces.Rect {
	return interfaces.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Helper methods for fluent configuration

// WithWindow adds a visible window under parent (0 for top-level). Children are
// kept in insertion order.
func (m *MockWindowAPI) WithWindow(hwnd, parent uintptr, title, class string, rect interfaces.Rect) *MockWindowAPI {
	m.Windows[hwnd] = &FakeWindow{
		Title:   title,
		Class:   class,
		Rect:    rect,
		Client:  R(0, 0, rect.Right-rect.Left, rect.Bottom-rect.Top),
		Visible: true,
		Parent:  parent,
	}

	if parent == 0 {
		m.TopLevel = append(m.TopLevel, hwnd)
		return m
	}

	if p, ok := m.Windows[parent]; ok {
		p.Children = append(p.Children, hwnd)
	}

	return m
}

func (m *MockWindowAPI) WithVisible(hwnd uintptr, visible bool) *MockWindowAPI {
	m.Windows[hwnd].Visible = visible
	return m
}

func (m *MockWindowAPI) WithMinimized(hwnd uintptr, minimized bool) *MockWindowAPI {
	m.Windows[hwnd].Minimized = minimized
	return m
}

func (m *MockWindowAPI) WithPid(hwnd uintptr, pid uint32) *MockWindowAPI {
	m.Windows[hwnd].Pid = pid
	return m
}

func (m *MockWindowAPI) WithForeground(hwnd uintptr) *MockWindowAPI {
	m.ForegroundHwnd = hwnd
	return m
}

func (m *MockWindowAPI) WithCursor(x, y int) *MockWindowAPI {
	m.CursorX, m.CursorY, m.CursorOK = x, y, true
	return m
}

func (m *MockWindowAPI) WithSendMessageResult(result uintptr) *MockWindowAPI {
	m.SendMessageResult = result
	return m
}

// Destroy makes hwnd stale without unlinking it, as if the window closed after
// its parent's child list or the top-level list was read.
func (m *MockWindowAPI) Destroy(hwnd uintptr) *MockWindowAPI {
	delete(m.Windows, hwnd)
	return m
}

// Remove destroys hwnd and its subtree and unlinks it from its parent.
func (m *MockWindowAPI) Remove(hwnd uintptr) *MockWindowAPI {
	w, ok := m.Windows[hwnd]
	if !ok {
		return m
	}

	for _, c := range slices.Clone(w.Children) {
		m.Remove(c)
	}

	if p, ok := m.Windows[w.Parent]; ok {
		p.Children = slices.DeleteFunc(p.Children, func(h uintptr) bool { return h == hwnd })
	}

	m.TopLevel = slices.DeleteFunc(m.TopLevel, func(h uintptr) bool { return h == hwnd })
	delete(m.Windows, hwnd)
	return m
}

// interfaces.WindowAPI

func (m *MockWindowAPI) IsWindow(hwnd uintptr) bool {
	_, ok := m.Windows[hwnd]
	return ok
}

func (m *MockWindowAPI) GetWindowText(hwnd uintptr) string {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Title
	}

	return ""
}

func (m *MockWindowAPI) GetClassName(hwnd uintptr) string {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Class
	}

	return ""
}

func (m *MockWindowAPI) GetWindowRect(hwnd uintptr) (interfaces.Rect, bool) {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Rect, true
	}

	return interfaces.Rect{}, false
}

func (m *MockWindowAPI) GetClientRect(hwnd uintptr) (interfaces.Rect, bool) {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Client, true
	}

	return interfaces.Rect{}, false
}

func (m *MockWindowAPI) IsIconic(hwnd uintptr) bool {
	w, ok := m.Windows[hwnd]
	return ok && w.Minimized
}

func (m *MockWindowAPI) IsWindowVisible(hwnd uintptr) bool {
	w, ok := m.Windows[hwnd]
	return ok && w.Visible
}

func (m *MockWindowAPI) GetForegroundWindow() uintptr {
	return m.ForegroundHwnd
}

func (m *MockWindowAPI) GetParent(hwnd uintptr) uintptr {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Parent
	}

	return 0
}

func (m *MockWindowAPI) GetWindowPid(hwnd uintptr) uint32 {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Pid
	}

	return 0
}

// WindowFromPoint returns the deepest visible window containing the point.
func (m *MockWindowAPI) WindowFromPoint(x, y int) uintptr {
	var found uintptr

	level := m.TopLevel
	for {
		next := uintptr(0)
		for _, h := range level {
			w, ok := m.Windows[h]
			if ok && w.Visible && contains(w.Rect, x, y) {
				next = h
				break
			}
		}

		if next == 0 {
			return found
		}

		found = next
		level = m.Windows[next].Children
	}
}

func (m *MockWindowAPI) GetCursorPos() (int, int, bool) {
	return m.CursorX, m.CursorY, m.CursorOK
}

func (m *MockWindowAPI) EnumWindows() []uintptr {
	m.EnumWindowsCalls++
	return slices.Clone(m.TopLevel)
}

func (m *MockWindowAPI) ChildWindows(hwnd uintptr) []uintptr {
	if w, ok := m.Windows[hwnd]; ok {
		return slices.Clone(w.Children)
	}

	return nil
}

func (m *MockWindowAPI) SetWindowText(hwnd uintptr, text string) bool {
	w, ok := m.Windows[hwnd]
	if !ok {
		return false
	}

	w.Title = text
	return true
}

func (m *MockWindowAPI) SetWindowPos(hwnd uintptr, x, y, width, height int, flags uint32) bool {
	m.SetWindowPosCalls = append(m.SetWindowPosCalls, SetWindowPosCall{hwnd, x, y, width, height, flags})

	w, ok := m.Windows[hwnd]
	if !ok {
		return false
	}

	if flags&swpNoMove == 0 {
		w.Rect.Right += x - w.Rect.Left
		w.Rect.Bottom += y - w.Rect.Top
		w.Rect.Left, w.Rect.Top = x, y
	}

	if flags&swpNoSize == 0 {
		w.Rect.Right = w.Rect.Left + width
		w.Rect.Bottom = w.Rect.Top + height
	}

	return true
}

// ShowWindow returns whether the window was previously visible.
func (m *MockWindowAPI) ShowWindow(hwnd uintptr, cmd int) bool {
	m.ShowWindowCalls = append(m.ShowWindowCalls, ShowWindowCall{hwnd, cmd})

	w, ok := m.Windows[hwnd]
	if !ok {
		return false
	}

	was := w.Visible
	switch cmd {
	case swHide:
		w.Visible = false
	case swMinimize, swShowMinimized:
		w.Visible, w.Minimized = true, true
	case swShowNormal, swShow, swMaximize, swRestore:
		w.Visible, w.Minimized = true, false
	}

	return was
}

func (m *MockWindowAPI) SetForegroundWindow(hwnd uintptr) bool {
	m.SetForegroundCalls = append(m.SetForegroundCalls, hwnd)

	if _, ok := m.Windows[hwnd]; !ok {
		return false
	}

	m.ForegroundHwnd = hwnd
	return true
}

func (m *MockWindowAPI) SetFocus(hwnd uintptr) bool {
	m.SetFocusCalls = append(m.SetFocusCalls, hwnd)
	_, ok := m.Windows[hwnd]
	return ok
}

// SendMessage records the call. WM_CLOSE removes the window.
func (m *MockWindowAPI) SendMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	m.SentMessages = append(m.SentMessages, MessageCall{hwnd, msg, wparam, lparam})

	if msg == wmClose {
		m.Remove(hwnd)
		return 0
	}

	return m.SendMessageResult
}

func (m *MockWindowAPI) SendText(hwnd uintptr, text string) uintptr {
	if !m.SetWindowText(hwnd, text) {
		return 0
	}

	return 1
}

func (m *MockWindowAPI) PostMessage(hwnd uintptr, msg uint32, wparam, lparam uintptr) bool {
	m.PostedMessages = append(m.PostedMessages, MessageCall{hwnd, msg, wparam, lparam})
	_, ok := m.Windows[hwnd]
	return ok
}

func contains(r interfaces.Rect, x, y int) bool {
	return r.Left <= x && x <= r.Right && r.Top <= y && y <= r.Bottom
}
