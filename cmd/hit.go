package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winspect/internal/timeouts"
)

func (a *app) newHitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hit <x> <y>",
		Short: "List the windows containing a screen point",
		Long: `List the windows whose rectangle contains the screen point (x, y), outermost
first. With --root only the descendants of that window are tested; otherwise
every visible top-level window containing the point is listed, each followed
by its matching descendants.`,
		Args: cobra.ExactArgs(2),
		RunE: a.run(runHit),
	}

	cmd.Flags().StringP("root", "r", "", "only test the descendants of this window")

	return cmd
}

func runHit(cmd *cobra.Command, ctx *ExecutionContext, args []string) error {
	x, y, err := parsePoint(args[0], args[1])
	if err != nil {
		return err
	}

	rootArg, _ := cmd.Flags().GetString("root")
	if rootArg == "" {
		return ctx.out.Windows(ctx.desktop.Pick(x, y))
	}

	root, err := resolveWindow(ctx, rootArg)
	if err != nil {
		return err
	}

	return ctx.out.Windows(ctx.desktop.HitTest(root, x, y))
}

func parsePoint(xs, ys string) (x, y int, err error) {
	x, err = strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}

	y, err = strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}

	return x, y, nil
}

func (a *app) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "List the windows under the mouse cursor after a delay",
		Long: `Wait for --delay, giving time to move the mouse over the window of interest,
then list every window under the cursor as "hit" would.`,
		Args: cobra.NoArgs,
		RunE: a.run(runPick),
	}

	cmd.Flags().Duration("delay", timeouts.PickDelay, "time to wait before reading the cursor")

	return cmd
}

func runPick(cmd *cobra.Command, ctx *ExecutionContext, _ []string) error {
	if err := countdown(cmd.Context(), ctx, ctx.cfg.PickDelay); err != nil {
		return err
	}

	x, y, ok := ctx.desktop.CursorPos()
	if !ok {
		return fmt.Errorf("could not read the cursor position")
	}

	ctx.log.Info("Picking windows", slog.Int("x", x), slog.Int("y", y))
	return ctx.out.Windows(ctx.desktop.Pick(x, y))
}

// countdown waits for d, logging the remaining whole seconds every tick.
func countdown(parent context.Context, ctx *ExecutionContext, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	if parent == nil {
		parent = context.Background()
	}

	deadline := time.NewTimer(d)
	defer deadline.Stop()

	tick := time.NewTicker(timeouts.CountdownTick)
	defer tick.Stop()

	remaining := d
	ctx.log.Info("Move the cursor over the target window", slog.Duration("in", remaining))

	for {
		select {
		case <-parent.Done():
			return parent.Err()
		case <-deadline.C:
			return nil
		case <-tick.C:
			remaining -= timeouts.CountdownTick
			if remaining > 0 {
				ctx.log.Debug("Picking soon", slog.Duration("in", remaining))
			}
		}
	}
}
