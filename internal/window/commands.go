package window

import (
	"fmt"
	"strings"
)

// SWPFlag is a SetWindowPos flag. Flags combine with bitwise OR.
type SWPFlag uint32

const (
	SWP_NOSIZE         SWPFlag = 0x0001
	SWP_NOMOVE         SWPFlag = 0x0002
	SWP_NOZORDER       SWPFlag = 0x0004
	SWP_NOREDRAW       SWPFlag = 0x0008
	SWP_NOACTIVATE     SWPFlag = 0x0010
	SWP_FRAMECHANGED   SWPFlag = 0x0020
	SWP_SHOWWINDOW     SWPFlag = 0x0040
	SWP_HIDEWINDOW     SWPFlag = 0x0080
	SWP_NOCOPYBITS     SWPFlag = 0x0100
	SWP_NOOWNERZORDER  SWPFlag = 0x0200
	SWP_NOSENDCHANGING SWPFlag = 0x0400
)

var swpFlagNames = map[string]SWPFlag{
	"nosize":         SWP_NOSIZE,
	"nomove":         SWP_NOMOVE,
	"nozorder":       SWP_NOZORDER,
	"noredraw":       SWP_NOREDRAW,
	"noactivate":     SWP_NOACTIVATE,
	"framechanged":   SWP_FRAMECHANGED,
	"showwindow":     SWP_SHOWWINDOW,
	"hidewindow":     SWP_HIDEWINDOW,
	"nocopybits":     SWP_NOCOPYBITS,
	"noownerzorder":  SWP_NOOWNERZORDER,
	"nosendchanging": SWP_NOSENDCHANGING,
}

// ParseSWPFlags combines flag names (case-insensitive, with or without the
// SWP_ prefix) into a single value. No names yields SWP_SHOWWINDOW.
func ParseSWPFlags(names []string) (SWPFlag, error) {
	if len(names) == 0 {
		return SWP_SHOWWINDOW, nil
	}

	var flags SWPFlag
	for _, name := range names {
		f, ok := swpFlagNames[normalizeConstName(name, "swp_")]
		if !ok {
			return 0, fmt.Errorf("unknown SetWindowPos flag %q", name)
		}

		flags |= f
	}

	return flags, nil
}

// ShowCommand is the nCmdShow argument of ShowWindow.
type ShowCommand int

const (
	SW_HIDE            ShowCommand = 0
	SW_SHOWNORMAL      ShowCommand = 1
	SW_SHOWMINIMIZED   ShowCommand = 2
	SW_MAXIMIZE        ShowCommand = 3
	SW_SHOWNOACTIVATE  ShowCommand = 4
	SW_SHOW            ShowCommand = 5
	SW_MINIMIZE        ShowCommand = 6
	SW_SHOWMINNOACTIVE ShowCommand = 7
	SW_SHOWNA          ShowCommand = 8
	SW_RESTORE         ShowCommand = 9
	SW_SHOWDEFAULT     ShowCommand = 10
)

func normalizeConstName(name, prefix string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), prefix)
}
