//go:build windows

package windows

import "github.com/Norgate-AV/winspect/internal/interfaces"

// RECT mirrors the Win32 RECT structure
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r RECT) toRect() interfaces.Rect {
	return interfaces.Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}
}

// POINT mirrors the Win32 POINT structure
type POINT struct {
	X int32
	Y int32
}

// pack returns the POINT as the single register value WindowFromPoint takes
// by value on 64-bit Windows.
func (p POINT) pack() uintptr {
	return uintptr(uint32(p.X)) | uintptr(uint32(p.Y))<<32
}
