package output

import (
	"fmt"
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/Norgate-AV/winspect/internal/window"
)

var (
	handleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	classStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	enumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).MarginRight(1)
)

// TreeNode is one window in a rendered hierarchy.
type TreeNode struct {
	Handle   window.Handle `json:"handle" yaml:"handle"`
	Title    string        `json:"title" yaml:"title"`
	Class    string        `json:"class_name" yaml:"class_name"`
	Rect     window.Rect   `json:"rect" yaml:"rect"`
	Children []*TreeNode   `json:"children,omitempty" yaml:"children,omitempty"`
}

func newTreeNode(w window.Window) (*TreeNode, error) {
	r, err := Row(w)
	if err != nil {
		return nil, err
	}

	return &TreeNode{Handle: r.Handle, Title: r.Title, Class: r.Class, Rect: r.Rect}, nil
}

// BuildTree assembles root and the depth-annotated pre-order sequence of its
// descendants into a tree. Windows that vanish during the walk are left out.
func BuildTree(root window.Window, walk iter.Seq2[int, window.Window]) (*TreeNode, error) {
	top, err := newTreeNode(root)
	if err != nil {
		return nil, err
	}

	// stack[d] is the most recent node at depth d
	stack := []*TreeNode{top}

	for depth, w := range walk {
		if depth > len(stack) {
			continue
		}

		node, err := newTreeNode(w)
		if err != nil {
			continue
		}

		stack = stack[:depth]
		parent := stack[depth-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	return top, nil
}

func (n *TreeNode) label() string {
	return fmt.Sprintf("%s %q %s",
		handleStyle.Render(n.Handle.String()),
		n.Title,
		classStyle.Render(n.Class),
	)
}

func (n *TreeNode) render() *tree.Tree {
	t := tree.Root(n.label())
	for _, c := range n.Children {
		t.Child(c.render())
	}

	return t
}

// Tree renders a window hierarchy.
func (p *Printer) Tree(root *TreeNode) error {
	if p.format != FormatTable {
		return p.Value(root)
	}

	t := root.render().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)

	_, err := fmt.Fprintln(p.w, t.String())
	return err
}
