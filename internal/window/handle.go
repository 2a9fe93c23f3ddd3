package window

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Norgate-AV/winspect/internal/interfaces"
)

// Handle is the platform-assigned identifier of a window (an HWND).
// It is stable while the window exists and may be reused after it is destroyed.
type Handle uintptr

// String renders the handle as upper-case hex with a 0x prefix.
func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// MarshalText renders the handle in hex for JSON and YAML output.
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (h *Handle) UnmarshalText(text []byte) error {
	v, err := ParseHandle(string(text))
	if err != nil {
		return err
	}

	*h = v
	return nil
}

// ParseHandle parses hexadecimal handle text, with or without a 0x prefix.
// Decimal-looking input is still read as hex.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return 0, fmt.Errorf("empty window handle %q", s)
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}

	return Handle(uintptr(v)), nil
}

// Rect is a rectangle in screen coordinates, ordered (left, top, right, bottom).
type Rect struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

func rectFrom(r interfaces.Rect) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// Contains reports whether (x, y) lies within r. All four edges are inclusive.
func (r Rect) Contains(x, y int) bool {
	return r.Left <= x && x <= r.Right && r.Top <= y && y <= r.Bottom
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// String renders the rectangle as a (left, top, right, bottom) tuple.
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}
