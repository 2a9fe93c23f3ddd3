package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winspect/internal/output"
	"github.com/Norgate-AV/winspect/internal/timeouts"
	"github.com/Norgate-AV/winspect/internal/window"
)

func (a *app) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report top-level windows as they are created and destroyed",
		Long: `Poll the top-level windows every --interval and print each window that
appeared (+) or disappeared (-) since the previous poll. Runs until
interrupted with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: a.run(runWatch),
	}

	cmd.Flags().Duration("interval", timeouts.WatchInterval, "time between polls")

	return cmd
}

func runWatch(cmd *cobra.Command, ctx *ExecutionContext, _ []string) error {
	interval := ctx.cfg.WatchInterval
	if interval < timeouts.MinWatchInterval {
		return fmt.Errorf("interval must be at least %s, got %s", timeouts.MinWatchInterval, interval)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	sigCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx.log.Info("Watching top-level windows, press Ctrl+C to stop", slog.Duration("interval", interval))
	return watchWindows(sigCtx, ctx.desktop.Snapshot, ctx.out, ticker.C, ctx.log.Debug)
}

// watchWindows prints the difference between consecutive snapshots on every
// tick until ctx is done or tick is closed.
func watchWindows(
	ctx context.Context,
	snapshot func() window.Snapshot,
	out *output.Printer,
	tick <-chan time.Time,
	debug func(msg string, args ...any),
) error {
	prev := snapshot()
	debug("Initial snapshot", slog.Int("windows", len(prev)))

	for {
		select {
		case <-ctx.Done():
			debug("Watch stopped", slog.Any("reason", context.Cause(ctx)))
			return nil

		case at, ok := <-tick:
			if !ok {
				return nil
			}

			next := snapshot()
			if err := out.Changes(at, window.Diff(prev, next)); err != nil {
				return err
			}

			prev = next
		}
	}
}
