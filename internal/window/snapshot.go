package window

import (
	"cmp"
	"slices"
)

// Snapshot maps the live top-level handles to their titles at one moment.
type Snapshot map[Handle]string

// Snapshot records the current top-level windows. Windows that vanish while
// being read are left out.
func (d *Desktop) Snapshot() Snapshot {
	snap := make(Snapshot)
	for _, h := range d.api.EnumWindows() {
		w := d.Window(Handle(h))

		title, err := w.Title()
		if err != nil {
			continue
		}

		snap[w.hwnd] = title
	}

	return snap
}

// Change is a window that appeared or disappeared between two snapshots.
type Change struct {
	Handle  Handle `json:"handle" yaml:"handle"`
	Title   string `json:"title" yaml:"title"`
	Created bool   `json:"created" yaml:"created"`
}

// Diff lists windows created and destroyed between prev and next, ordered by handle.
func Diff(prev, next Snapshot) []Change {
	var changes []Change

	for h, title := range next {
		if _, ok := prev[h]; !ok {
			changes = append(changes, Change{Handle: h, Title: title, Created: true})
		}
	}

	for h, title := range prev {
		if _, ok := next[h]; !ok {
			changes = append(changes, Change{Handle: h, Title: title})
		}
	}

	slices.SortFunc(changes, func(a, b Change) int {
		return cmp.Compare(a.Handle, b.Handle)
	})

	return changes
}
