package window

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Predicate accepts a child whose named property equals one of Values.
type Predicate struct {
	Property string
	Values   []string
}

// Filter is an ordered list of predicates. Each predicate narrows the set left
// by the previous ones, so conflicting predicates yield an empty result.
type Filter []Predicate

// FilterableProperties lists the property names a Predicate may use.
var FilterableProperties = []string{
	PropHandle,
	PropTitle,
	PropClassName,
	PropVisible,
	PropMinimized,
	PropForeground,
	PropParent,
	PropPID,
}

// ParseFilter builds a Filter from "name=value[,value...]" expressions, keeping
// their order. A repeated name becomes a second, further-narrowing predicate.
func ParseFilter(exprs []string) (Filter, error) {
	f := make(Filter, 0, len(exprs))
	for _, expr := range exprs {
		name, values, ok := strings.Cut(expr, "=")
		if !ok {
			return nil, fmt.Errorf("invalid filter %q: expected name=value", expr)
		}

		name = strings.TrimSpace(name)
		if !slices.Contains(FilterableProperties, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
		}

		f = append(f, Predicate{Property: name, Values: strings.Split(values, ",")})
	}

	return f, nil
}

// FilterChildren returns the children of w that satisfy every predicate in f,
// in child order. An empty filter returns all children.
func (d *Desktop) FilterChildren(w Window, f Filter) ([]Window, error) {
	children, err := w.Children()
	if err != nil {
		return nil, err
	}

	matchers := make([]Matcher, 0, len(f))
	for _, p := range f {
		match, err := predicateMatcher(p)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, match)
	}

	for _, match := range matchers {
		kept := make([]Window, 0, len(children))
		for _, c := range children {
			ok, err := match(c)
			if err != nil {
				// gone since Children was called
				continue
			}

			if ok {
				kept = append(kept, c)
			}
		}

		children = kept
	}

	return children, nil
}

func predicateMatcher(p Predicate) (Matcher, error) {
	switch p.Property {
	case PropTitle:
		return stringIn(p.Values, Window.Title), nil
	case PropClassName:
		return stringIn(p.Values, Window.ClassName), nil
	case PropVisible:
		return boolIn(p.Values, Window.IsVisible)
	case PropMinimized:
		return boolIn(p.Values, Window.IsMinimized)
	case PropForeground:
		return boolIn(p.Values, Window.IsForeground)
	case PropHandle:
		handles, err := parseHandles(p.Values)
		if err != nil {
			return nil, err
		}
		return func(w Window) (bool, error) {
			return slices.Contains(handles, w.hwnd), nil
		}, nil
	case PropParent:
		handles, err := parseHandles(p.Values)
		if err != nil {
			return nil, err
		}
		return func(w Window) (bool, error) {
			parent, ok, err := w.Parent()
			if err != nil || !ok {
				return false, err
			}
			return slices.Contains(handles, parent.hwnd), nil
		}, nil
	case PropPID:
		pids := make([]uint32, 0, len(p.Values))
		for _, v := range p.Values {
			pid, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid pid %q: %w", v, err)
			}
			pids = append(pids, uint32(pid))
		}
		return func(w Window) (bool, error) {
			pid, err := w.ProcessID()
			if err != nil {
				return false, err
			}
			return slices.Contains(pids, pid), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, p.Property)
	}
}

func stringIn(values []string, get func(Window) (string, error)) Matcher {
	return func(w Window) (bool, error) {
		v, err := get(w)
		if err != nil {
			return false, err
		}

		return slices.Contains(values, v), nil
	}
}

func boolIn(values []string, get func(Window) bool) (Matcher, error) {
	accepted := make([]bool, 0, len(values))
	for _, v := range values {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", v, err)
		}
		accepted = append(accepted, b)
	}

	return func(w Window) (bool, error) {
		return slices.Contains(accepted, get(w)), nil
	}, nil
}

func parseHandles(values []string) ([]Handle, error) {
	handles := make([]Handle, 0, len(values))
	for _, v := range values {
		h, err := ParseHandle(v)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}

	return handles, nil
}
