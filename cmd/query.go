package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winspect/internal/output"
	"github.com/Norgate-AV/winspect/internal/window"
)

func (a *app) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List top-level windows",
		Long: `List top-level windows, optionally narrowed by title or class substring,
process id or visibility. Substring matches are case-sensitive.`,
		Args: cobra.NoArgs,
		RunE: a.run(runList),
	}

	cmd.Flags().String("title", "", "only windows whose title contains this text")
	cmd.Flags().String("class", "", "only windows whose class name contains this text")
	cmd.Flags().Uint32("pid", 0, "only windows owned by this process id")
	cmd.Flags().Bool("visible", false, "only visible windows")

	return cmd
}

func runList(cmd *cobra.Command, ctx *ExecutionContext, _ []string) error {
	var matchers []window.Matcher

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		matchers = append(matchers, window.TitleContains(title))
	}

	if cmd.Flags().Changed("class") {
		class, _ := cmd.Flags().GetString("class")
		matchers = append(matchers, window.ClassContains(class))
	}

	if cmd.Flags().Changed("pid") {
		pid, _ := cmd.Flags().GetUint32("pid")
		matchers = append(matchers, window.ProcessIs(pid))
	}

	if visible, _ := cmd.Flags().GetBool("visible"); visible {
		matchers = append(matchers, window.Visible())
	}

	var windows []window.Window
	if len(matchers) == 0 {
		windows = ctx.desktop.AllWindows()
	} else {
		windows = slices.Collect(ctx.desktop.Windows(window.All(matchers...)))
	}

	ctx.log.Debug("Listed windows", slog.Int("count", len(windows)))
	return ctx.out.Windows(windows)
}

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hwnd|foreground|cursor>",
		Short: "Show every property of a window",
		Long: `Show every property of a window. The window is given by its hex handle,
or as "foreground" for the foreground window, or "cursor" for the top-level
window under the mouse cursor.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(runInspect),
	}
}

func runInspect(_ *cobra.Command, ctx *ExecutionContext, args []string) error {
	w, err := selectWindow(ctx, args[0])
	if err != nil {
		return err
	}

	props, err := w.Properties()
	if err != nil {
		return err
	}

	return ctx.out.Properties(props)
}

// selectWindow resolves a handle argument or one of the keywords
// "foreground" and "cursor".
func selectWindow(ctx *ExecutionContext, arg string) (window.Window, error) {
	switch strings.ToLower(arg) {
	case "foreground":
		w, ok := ctx.desktop.Foreground()
		if !ok {
			return window.Window{}, fmt.Errorf("no foreground window")
		}
		return w, nil

	case "cursor":
		x, y, ok := ctx.desktop.CursorPos()
		if !ok {
			return window.Window{}, fmt.Errorf("could not read the cursor position")
		}

		w, ok := ctx.desktop.TopLevelAt(x, y)
		if !ok {
			return window.Window{}, fmt.Errorf("no window at (%d, %d)", x, y)
		}
		return w, nil
	}

	return resolveWindow(ctx, arg)
}

func (a *app) newChildrenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "children <hwnd>",
		Short: "List the immediate children of a window",
		Long: `List the immediate children of a window, in the order the window manager
reports them. Each --filter narrows the result further; a child passes a
filter when its property equals any of the listed values.

Filterable properties: ` + strings.Join(window.FilterableProperties, ", "),
		Example: `  winspect children 0x1A2B --filter class_name=Button,Static --filter visible=true`,
		Args:    cobra.ExactArgs(1),
		RunE:    a.run(runChildren),
	}

	cmd.Flags().StringArrayP("filter", "f", nil, "property=value[,value...] (repeatable)")

	return cmd
}

func runChildren(cmd *cobra.Command, ctx *ExecutionContext, args []string) error {
	exprs, _ := cmd.Flags().GetStringArray("filter")

	filter, err := window.ParseFilter(exprs)
	if err != nil {
		return err
	}

	w, err := resolveWindow(ctx, args[0])
	if err != nil {
		return err
	}

	children, err := ctx.desktop.FilterChildren(w, filter)
	if err != nil {
		return err
	}

	return ctx.out.Windows(children)
}

func (a *app) newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <hwnd>",
		Short: "Show the window hierarchy below a window",
		Args:  cobra.ExactArgs(1),
		RunE:  a.run(runTree),
	}

	cmd.Flags().IntP("depth", "d", 0, "maximum depth below the window (0 for no limit)")

	return cmd
}

func runTree(cmd *cobra.Command, ctx *ExecutionContext, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	if depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", depth)
	}

	root, err := selectWindow(ctx, args[0])
	if err != nil {
		return err
	}

	node, err := output.BuildTree(root, ctx.desktop.WalkDepth(root, depth))
	if err != nil {
		return err
	}

	return ctx.out.Tree(node)
}
