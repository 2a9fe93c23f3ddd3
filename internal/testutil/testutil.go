// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Norgate-AV/winspect/internal/interfaces"
)

var _ interfaces.WindowAPI = (*MockWindowAPI)(nil)

// Handles of the windows in SampleDesktop.
const (
	Notepad       = 0x100
	NotepadEdit   = 0x110
	NotepadScroll = 0x111
	NotepadStatus = 0x120
	Calculator    = 0x200
	CalcEquals    = 0x210
	CalcOne       = 0x220
	Taskbar       = 0x300
)

// SampleDesktop builds a small desktop:
//
//	0x100 Notepad "Untitled - Notepad" (pid 1000, foreground)
//	  0x110 Edit
//	    0x111 ScrollBar
//	  0x120 msctls_statusbar32 "Ready"
//	0x200 ApplicationFrameWindow "Calculator" (pid 2000)
//	  0x210 Button "="
//	  0x220 Button "1"
//	0x300 Shell_TrayWnd (pid 3000, hidden)
func SampleDesktop() *MockWindowAPI {
	return NewMockWindowAPI().
		WithWindow(Notepad, 0, "Untitled - Notepad", "Notepad", R(0, 0, 800, 600)).
		WithPid(Notepad, 1000).
		WithWindow(NotepadEdit, Notepad, "", "Edit", R(10, 50, 790, 560)).
		WithPid(NotepadEdit, 1000).
		WithWindow(NotepadScroll, NotepadEdit, "", "ScrollBar", R(770, 50, 790, 560)).
		WithPid(NotepadScroll, 1000).
		WithWindow(NotepadStatus, Notepad, "Ready", "msctls_statusbar32", R(10, 565, 790, 595)).
		WithPid(NotepadStatus, 1000).
		WithWindow(Calculator, 0, "Calculator", "ApplicationFrameWindow", R(900, 0, 1200, 400)).
		WithPid(Calculator, 2000).
		WithWindow(CalcEquals, Calculator, "=", "Button", R(910, 300, 1000, 390)).
		WithPid(CalcEquals, 2000).
		WithWindow(CalcOne, Calculator, "1", "Button", R(1010, 300, 1100, 390)).
		WithPid(CalcOne, 2000).
		WithWindow(Taskbar, 0, "", "Shell_TrayWnd", R(0, 1040, 1920, 1080)).
		WithPid(Taskbar, 3000).
		WithVisible(Taskbar, false).
		WithForeground(Notepad)
}

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "winspect-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			// Ignore cleanup errors in tests
		}
	})
	return dir
}

// CreateConfigFile writes a winspect.yaml with the given content into dir.
func CreateConfigFile(t *testing.T, dir string, content string) string {
	path := filepath.Join(dir, "winspect.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	return path
}
