package window

import (
	"strconv"
	"strings"
)

// Property is one named, rendered value of a window.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// PropertyList is an ordered property map.
type PropertyList []Property

// Get returns the value for name.
func (p PropertyList) Get(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}

	return "", false
}

// Map returns the properties as an unordered map.
func (p PropertyList) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, prop := range p {
		m[prop.Name] = prop.Value
	}

	return m
}

// Names of the properties reported by Properties, in order.
const (
	PropHandle     = "handle"
	PropTitle      = "title"
	PropClassName  = "class_name"
	PropRect       = "rect"
	PropClientRect = "client_rect"
	PropMinimized  = "minimized"
	PropVisible    = "visible"
	PropForeground = "foreground"
	PropParent     = "parent"
	PropPID        = "pid"
	PropChildren   = "children"
)

type accessor struct {
	name string
	get  func(Window) (string, error)
}

var accessors = []accessor{
	{PropHandle, func(w Window) (string, error) { return w.hwnd.String(), nil }},
	{PropTitle, Window.Title},
	{PropClassName, Window.ClassName},
	{PropRect, func(w Window) (string, error) {
		r, err := w.Rect()
		return r.String(), err
	}},
	{PropClientRect, func(w Window) (string, error) {
		r, err := w.ClientRect()
		return r.String(), err
	}},
	{PropMinimized, func(w Window) (string, error) { return strconv.FormatBool(w.IsMinimized()), nil }},
	{PropVisible, func(w Window) (string, error) { return strconv.FormatBool(w.IsVisible()), nil }},
	{PropForeground, func(w Window) (string, error) { return strconv.FormatBool(w.IsForeground()), nil }},
	{PropParent, func(w Window) (string, error) {
		p, ok, err := w.Parent()
		if err != nil || !ok {
			return "", err
		}
		return p.hwnd.String(), nil
	}},
	{PropPID, func(w Window) (string, error) {
		pid, err := w.ProcessID()
		return strconv.FormatUint(uint64(pid), 10), err
	}},
	{PropChildren, func(w Window) (string, error) {
		children, err := w.Children()
		if err != nil {
			return "", err
		}
		hs := make([]string, 0, len(children))
		for _, c := range children {
			hs = append(hs, c.hwnd.String())
		}
		return strings.Join(hs, " "), nil
	}},
}

// Properties queries every reported property of the window. It fails with
// ErrInvalidHandle if the window is gone, including when it disappears part
// way through.
func (w Window) Properties() (PropertyList, error) {
	if err := w.valid(); err != nil {
		return nil, err
	}

	props := make(PropertyList, 0, len(accessors))
	for _, a := range accessors {
		v, err := a.get(w)
		if err != nil {
			return nil, err
		}

		props = append(props, Property{Name: a.name, Value: v})
	}

	return props, nil
}
