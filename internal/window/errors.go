package window

import "errors"

var (
	// ErrInvalidHandle is returned when a handle no longer refers to a live window.
	ErrInvalidHandle = errors.New("invalid window handle")

	// ErrUnknownProperty is returned for a filter or property name outside the supported set.
	ErrUnknownProperty = errors.New("unknown window property")

	// ErrUnknownMessage is returned when a message name is neither a known WM_* name nor hex.
	ErrUnknownMessage = errors.New("unknown window message")
)
