// Package timeouts defines the delays and polling intervals used by winspect commands.
package timeouts

import "time"

const (
	// PickDelay is how long `pick` waits before reading the cursor position,
	// giving the user time to move the pointer over the target window.
	PickDelay = 3 * time.Second

	// CountdownTick is the interval between countdown messages while `pick` waits.
	CountdownTick = 1 * time.Second

	// WatchInterval is the default delay between two top-level window snapshots
	// taken by `watch`.
	WatchInterval = 500 * time.Millisecond

	// MinWatchInterval bounds --interval so `watch` does not spin on EnumWindows.
	MinWatchInterval = 50 * time.Millisecond
)
