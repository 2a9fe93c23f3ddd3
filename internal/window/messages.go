package window

import (
	"fmt"
	"strconv"
	"strings"
)

// Message identifiers used by the helpers in this package and accepted by name
// in ParseMessage.
const (
	WM_NULL        uint32 = 0x0000
	WM_CLOSE       uint32 = 0x0010
	WM_SETTEXT     uint32 = 0x000C
	WM_GETTEXT     uint32 = 0x000D
	WM_KEYDOWN     uint32 = 0x0100
	WM_KEYUP       uint32 = 0x0101
	WM_CHAR        uint32 = 0x0102
	WM_SYSKEYDOWN  uint32 = 0x0104
	WM_SYSKEYUP    uint32 = 0x0105
	WM_COMMAND     uint32 = 0x0111
	WM_SYSCOMMAND  uint32 = 0x0112
	WM_LBUTTONDOWN uint32 = 0x0201
	WM_LBUTTONUP   uint32 = 0x0202
	WM_RBUTTONDOWN uint32 = 0x0204
	WM_RBUTTONUP   uint32 = 0x0205
	WM_QUIT        uint32 = 0x0012
	WM_ACTIVATE    uint32 = 0x0006
	WM_SETFOCUS    uint32 = 0x0007
	WM_KILLFOCUS   uint32 = 0x0008
	WM_ENABLE      uint32 = 0x000A
	WM_PAINT       uint32 = 0x000F
	WM_SHOWWINDOW  uint32 = 0x0018
	BM_CLICK       uint32 = 0x00F5
)

var messageNames = map[string]uint32{
	"WM_NULL":        WM_NULL,
	"WM_CLOSE":       WM_CLOSE,
	"WM_SETTEXT":     WM_SETTEXT,
	"WM_GETTEXT":     WM_GETTEXT,
	"WM_KEYDOWN":     WM_KEYDOWN,
	"WM_KEYUP":       WM_KEYUP,
	"WM_CHAR":        WM_CHAR,
	"WM_SYSKEYDOWN":  WM_SYSKEYDOWN,
	"WM_SYSKEYUP":    WM_SYSKEYUP,
	"WM_COMMAND":     WM_COMMAND,
	"WM_SYSCOMMAND":  WM_SYSCOMMAND,
	"WM_LBUTTONDOWN": WM_LBUTTONDOWN,
	"WM_LBUTTONUP":   WM_LBUTTONUP,
	"WM_RBUTTONDOWN": WM_RBUTTONDOWN,
	"WM_RBUTTONUP":   WM_RBUTTONUP,
	"WM_QUIT":        WM_QUIT,
	"WM_ACTIVATE":    WM_ACTIVATE,
	"WM_SETFOCUS":    WM_SETFOCUS,
	"WM_KILLFOCUS":   WM_KILLFOCUS,
	"WM_ENABLE":      WM_ENABLE,
	"WM_PAINT":       WM_PAINT,
	"WM_SHOWWINDOW":  WM_SHOWWINDOW,
	"BM_CLICK":       BM_CLICK,
}

// ParseMessage resolves a message identifier from a name such as WM_CLOSE or
// CLOSE (case-insensitive) or from hex text such as "0x10".
func ParseMessage(s string) (uint32, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if msg, ok := messageNames[name]; ok {
		return msg, nil
	}

	if msg, ok := messageNames["WM_"+name]; ok {
		return msg, nil
	}

	digits := strings.TrimPrefix(name, "0X")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMessage, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMessage, s)
	}

	return uint32(v), nil
}

// MessageName returns the WM_* name of msg, or its hex form if it is not in the table.
func MessageName(msg uint32) string {
	for name, v := range messageNames {
		if v == msg {
			return name
		}
	}

	return fmt.Sprintf("0x%04X", msg)
}
