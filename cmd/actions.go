package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winspect/internal/window"
)

// ActionResult reports the outcome of a window action in yaml and json output.
type ActionResult struct {
	Action     string        `json:"action" yaml:"action"`
	Handle     window.Handle `json:"handle" yaml:"handle"`
	OK         bool          `json:"ok" yaml:"ok"`
	WasVisible *bool         `json:"was_visible,omitempty" yaml:"was_visible,omitempty"`
	Result     string        `json:"result,omitempty" yaml:"result,omitempty"`
}

func report(ctx *ExecutionContext, res ActionResult) error {
	text := fmt.Sprintf("%s %s", res.Action, res.Handle)
	if res.WasVisible != nil {
		text += fmt.Sprintf(" (was visible: %t)", *res.WasVisible)
	}
	if res.Result != "" {
		text += " => " + res.Result
	}

	return ctx.out.Message(text, res)
}

// showAction is a show-state change whose return value is the prior visibility.
type showAction struct {
	use   string
	short string
	apply func(window.Window) bool
}

var showActions = []showAction{
	{"show", "Show a window at its normal size and position", window.Window.Show},
	{"hide", "Hide a window", window.Window.Hide},
	{"maximize", "Maximize and activate a window", window.Window.Maximize},
	{"minimize", "Minimize a window", window.Window.Minimize},
	{"restore", "Restore a minimized or maximized window", window.Window.Restore},
}

func (a *app) newShowCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(showActions)+3)

	for _, sa := range showActions {
		cmds = append(cmds, &cobra.Command{
			Use:   sa.use + " <hwnd>",
			Short: sa.short,
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(_ *cobra.Command, ctx *ExecutionContext, args []string) error {
				w, err := resolveWindow(ctx, args[0])
				if err != nil {
					return err
				}

				was := sa.apply(w)
				ctx.log.Debug("Changed show state", slog.String("action", sa.use), slog.String("hwnd", w.Handle().String()))
				return report(ctx, ActionResult{Action: sa.use, Handle: w.Handle(), OK: true, WasVisible: &was})
			}),
		})
	}

	cmds = append(cmds,
		a.newBoolActionCmd("front", "Bring a window to the foreground", window.Window.BringToFront),
		a.newBoolActionCmd("focus", "Give a window keyboard focus", window.Window.Focus),
		a.newCloseCmd(),
	)

	return cmds
}

// newBoolActionCmd wraps an action that reports success as a bool.
func (a *app) newBoolActionCmd(use, short string, apply func(window.Window) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <hwnd>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(_ *cobra.Command, ctx *ExecutionContext, args []string) error {
			w, err := resolveWindow(ctx, args[0])
			if err != nil {
				return err
			}

			if !apply(w) {
				return fmt.Errorf("%s failed for window %s", use, w.Handle())
			}

			return report(ctx, ActionResult{Action: use, Handle: w.Handle(), OK: true})
		}),
	}
}

func (a *app) newCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <hwnd>",
		Short: "Ask a window to close",
		Long: `Send WM_CLOSE and wait for the window to handle it. The application may
still refuse, for example by asking to save changes.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(_ *cobra.Command, ctx *ExecutionContext, args []string) error {
			w, err := resolveWindow(ctx, args[0])
			if err != nil {
				return err
			}

			w.Close()

			closed := !w.Exists()
			if !closed {
				ctx.log.Warn("Window is still open", slog.String("hwnd", w.Handle().String()))
			}

			return report(ctx, ActionResult{Action: "close", Handle: w.Handle(), OK: closed})
		}),
	}
}

func (a *app) newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <hwnd> <x> <y> <width> <height>",
		Short: "Move and resize a window",
		Long: `Move and resize a window with SetWindowPos. --flags takes SWP_ flag names,
with or without the SWP_ prefix; the default is SHOWWINDOW.`,
		Example: `  winspect move 0x1A2B 0 0 800 600
  winspect move 0x1A2B 100 100 0 0 --flags nosize,nozorder`,
		Args: cobra.ExactArgs(5),
		RunE: a.run(runMove),
	}

	cmd.Flags().StringSlice("flags", nil, "SetWindowPos flags, e.g. nosize,nozorder")

	return cmd
}

func runMove(cmd *cobra.Command, ctx *ExecutionContext, args []string) error {
	names, _ := cmd.Flags().GetStringSlice("flags")

	flags, err := window.ParseSWPFlags(names)
	if err != nil {
		return err
	}

	geom := make([]int, 4)
	for i, s := range args[1:] {
		geom[i], err = strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid geometry value %q: %w", s, err)
		}
	}

	w, err := resolveWindow(ctx, args[0])
	if err != nil {
		return err
	}

	if !w.Move(geom[0], geom[1], geom[2], geom[3], flags) {
		return fmt.Errorf("move failed for window %s", w.Handle())
	}

	return report(ctx, ActionResult{Action: "move", Handle: w.Handle(), OK: true})
}

func (a *app) newSetTitleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-title <hwnd> <text>",
		Short: "Change the text of a window",
		Long: `Change the text of a window. Controls owned by another process ignore
SetWindowText; --message sends WM_SETTEXT instead, which reaches them.`,
		Args: cobra.ExactArgs(2),
		RunE: a.run(runSetTitle),
	}

	cmd.Flags().BoolP("message", "m", false, "send WM_SETTEXT instead of calling SetWindowText")

	return cmd
}

func runSetTitle(cmd *cobra.Command, ctx *ExecutionContext, args []string) error {
	w, err := resolveWindow(ctx, args[0])
	if err != nil {
		return err
	}

	if viaMessage, _ := cmd.Flags().GetBool("message"); viaMessage {
		if w.SendText(args[1]) == 0 {
			return fmt.Errorf("WM_SETTEXT was rejected by window %s", w.Handle())
		}
	} else if !w.SetTitle(args[1]) {
		return fmt.Errorf("set-title failed for window %s", w.Handle())
	}

	return report(ctx, ActionResult{Action: "set-title", Handle: w.Handle(), OK: true})
}

func (a *app) newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <hwnd> <message> [wparam] [lparam]",
		Short: "Post or send a window message",
		Long: `Deliver a window message. The message is a name such as WM_CLOSE, CLOSE or
BM_CLICK, or a hex number. wparam and lparam accept decimal or 0x-prefixed hex.

Messages are posted by default, which never blocks. --sync sends the message
and prints the window procedure's result, but waits for as long as the
target takes to answer, forever if it is hung.`,
		Example: `  winspect send 0x1A2B WM_CLOSE
  winspect send 0x1A2B 0x0010 --sync`,
		Args: cobra.RangeArgs(2, 4),
		RunE: a.run(runSend),
	}

	cmd.Flags().Bool("sync", false, "send synchronously and print the result")

	return cmd
}

func runSend(cmd *cobra.Command, ctx *ExecutionContext, args []string) error {
	msg, err := window.ParseMessage(args[1])
	if err != nil {
		return err
	}

	params := [2]uintptr{}
	for i, s := range args[2:] {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid message parameter %q: %w", s, err)
		}
		params[i] = uintptr(v)
	}

	w, err := resolveWindow(ctx, args[0])
	if err != nil {
		return err
	}

	action := "post " + window.MessageName(msg)

	if sync, _ := cmd.Flags().GetBool("sync"); sync {
		res := w.SendMessage(msg, params[0], params[1])
		return report(ctx, ActionResult{
			Action: "send " + window.MessageName(msg),
			Handle: w.Handle(),
			OK:     true,
			Result: fmt.Sprintf("0x%X", res),
		})
	}

	if !w.Post(msg, params[0], params[1]) {
		return fmt.Errorf("%s failed for window %s", action, w.Handle())
	}

	return report(ctx, ActionResult{Action: action, Handle: w.Handle(), OK: true})
}
