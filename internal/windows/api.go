//go:build windows

package windows

import (
	"syscall"

	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
)

var (
	kernel32               = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")

	user32                       = syscall.NewLazyDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procEnumChildWindows         = user32.NewProc("EnumChildWindows")
	procGetAncestor              = user32.NewProc("GetAncestor")
	procGetDesktopWindow         = user32.NewProc("GetDesktopWindow")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetClientRect            = user32.NewProc("GetClientRect")
	procIsIconic                 = user32.NewProc("IsIconic")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procWindowFromPoint          = user32.NewProc("WindowFromPoint")
	procGetCursorPos             = user32.NewProc("GetCursorPos")
	procSetWindowTextW           = user32.NewProc("SetWindowTextW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procSetFocus                 = user32.NewProc("SetFocus")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procSendMessageW             = user32.NewProc("SendMessageW")
	procPostMessageW             = user32.NewProc("PostMessageW")
)

const (
	WM_SETTEXT = 0x000C

	GA_PARENT = 1

	MAX_CLASS_NAME = 256
)

var _ interfaces.WindowAPI = (*WindowsAPI)(nil)

// WindowsAPI implements interfaces.WindowAPI on top of user32.dll.
// Each method is a single blocking call into the window manager.
type WindowsAPI struct {
	log logger.LoggerInterface
}

// NewWindowsAPI creates a new WindowsAPI with the provided logger
func NewWindowsAPI(log logger.LoggerInterface) *WindowsAPI {
	return &WindowsAPI{log: log}
}
