package window

import (
	"iter"
	"log/slog"
	"slices"
)

type frame struct {
	w     Window
	depth int
}

// pushChildren pushes the children of w so that the first child is popped first.
func pushChildren(stack []frame, w Window, depth int) []frame {
	children, err := w.Children()
	if err != nil {
		return stack
	}

	for _, c := range slices.Backward(children) {
		stack = append(stack, frame{w: c, depth: depth})
	}

	return stack
}

// HitTest returns the descendants of root whose rectangle contains (x, y), in
// depth-first pre-order. A window whose rectangle excludes the point is pruned
// together with its whole subtree. root itself is not tested.
func (d *Desktop) HitTest(root Window, x, y int) []Window {
	var hits []Window
	stack := pushChildren(nil, root, 1)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r, err := top.w.Rect()
		if err != nil {
			d.log.Trace("Hit test skipped window",
				slog.String("hwnd", top.w.hwnd.String()),
				slog.Any("error", err),
			)
			continue
		}

		if !r.Contains(x, y) {
			continue
		}

		hits = append(hits, top.w)
		stack = pushChildren(stack, top.w, top.depth+1)
	}

	return hits
}

// Walk lazily yields every descendant of root in depth-first pre-order along
// with its depth below root (children of root are depth 1). Each iteration
// re-enumerates.
func (d *Desktop) Walk(root Window) iter.Seq2[int, Window] {
	return d.WalkDepth(root, 0)
}

// WalkDepth is Walk limited to maxDepth levels below root. Zero means no limit.
func (d *Desktop) WalkDepth(root Window, maxDepth int) iter.Seq2[int, Window] {
	return func(yield func(int, Window) bool) {
		stack := pushChildren(nil, root, 1)

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(top.depth, top.w) {
				return
			}

			if maxDepth == 0 || top.depth < maxDepth {
				stack = pushChildren(stack, top.w, top.depth+1)
			}
		}
	}
}

// Pick returns every visible top-level window containing (x, y), each followed
// by its HitTest results at that point.
func (d *Desktop) Pick(x, y int) []Window {
	var picked []Window

	for w := range d.Windows(Visible()) {
		r, err := w.Rect()
		if err != nil || !r.Contains(x, y) {
			continue
		}

		picked = append(picked, w)
		picked = append(picked, d.HitTest(w, x, y)...)
	}

	return picked
}
