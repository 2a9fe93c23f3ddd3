package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
	"github.com/Norgate-AV/winspect/internal/output"
	"github.com/Norgate-AV/winspect/internal/version"
	"github.com/Norgate-AV/winspect/internal/window"
)

// APIFactory opens the native window API.
type APIFactory func(log logger.LoggerInterface) (interfaces.WindowAPI, error)

// ExecutionContext holds the state a command needs once flags and config are resolved.
type ExecutionContext struct {
	cfg     *Config
	log     logger.LoggerInterface
	desktop *window.Desktop
	out     *output.Printer
}

// commandFunc is the body of a window command.
type commandFunc func(cmd *cobra.Command, ctx *ExecutionContext, args []string) error

// app builds the command tree around its injectable dependencies.
type app struct {
	newAPI   APIFactory
	exitFunc func(int) // Injectable for testing; defaults to os.Exit
}

// RootCmd is the root command for the winspect CLI application.
var RootCmd = NewRootCmd()

// NewRootCmd creates the command tree over the native window API.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newWindowAPI, os.Exit)
}

func newRootCmd(newAPI APIFactory, exitFunc func(int)) *cobra.Command {
	a := &app{newAPI: newAPI, exitFunc: exitFunc}

	root := &cobra.Command{
		Use:          "winspect",
		Short:        "winspect - Inspect and control desktop windows",
		Version:      version.GetVersion(),
		Args:         cobra.NoArgs,
		RunE:         a.runRoot,
		SilenceUsage: true, // Don't show usage on runtime errors
	}

	// Set custom version template to show full version info
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	root.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	root.PersistentFlags().StringP("output", "o", string(output.FormatTable), "output format: table, yaml or json")
	root.PersistentFlags().String("log-dir", "", "directory for the log file (default %LOCALAPPDATA%\\winspect)")

	root.AddCommand(
		a.newListCmd(),
		a.newInspectCmd(),
		a.newChildrenCmd(),
		a.newTreeCmd(),
		a.newHitCmd(),
		a.newPickCmd(),
		a.newMoveCmd(),
		a.newSetTitleCmd(),
		a.newSendCmd(),
		a.newWatchCmd(),
		newVersionCmd(),
	)
	root.AddCommand(a.newShowCmds()...)

	return root
}

// runRoot only serves --logs; without it the help is shown.
func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := NewConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if err := handleLogsFlag(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), a.exitFunc); err != nil {
		return err
	}

	return cmd.Help()
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, stdout, stderr io.Writer, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	opts := cfg.loggerOptions()
	if err := logger.PrintLogFile(stdout, opts); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Log file does not exist: %s\n", logger.GetLogPath(opts))
			exitFunc(1)
			return nil
		}

		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		exitFunc(1)
		return nil
	}

	exitFunc(0)
	return nil
}

// initializeLogger creates a logger that writes its console output to stderr
func initializeLogger(cfg *Config, stderr io.Writer) (logger.LoggerInterface, error) {
	opts := cfg.loggerOptions()
	opts.Console = stderr

	log, err := logger.NewLogger(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// run wraps a command body with config loading, logging, the window API and
// panic recovery.
func (a *app) run(fn commandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := NewConfigFromFlags(cmd)
		if err != nil {
			return err
		}

		if cfg.ShowLogs {
			return handleLogsFlag(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), a.exitFunc)
		}

		log, err := initializeLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		defer log.Close()

		log.Debug("Starting winspect", slog.String("command", cmd.CommandPath()), slog.Any("args", args))
		log.Debug("Flags set",
			slog.Bool("verbose", cfg.Verbose),
			slog.String("output", string(cfg.Output)),
			slog.String("config", cfg.File),
		)

		// Recover from panics and log them
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC RECOVERED",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				fmt.Fprintf(cmd.ErrOrStderr(), "\n*** PANIC: %v ***\n", r)
				fmt.Fprintf(cmd.ErrOrStderr(), "Check log file for details\n")
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		api, err := a.newAPI(log)
		if err != nil {
			log.Error("Window API unavailable", slog.Any("error", err))
			return err
		}

		ctx := &ExecutionContext{
			cfg:     cfg,
			log:     log,
			desktop: window.NewDesktop(api, log),
			out:     output.New(cmd.OutOrStdout(), cfg.Output),
		}

		if err := fn(cmd, ctx, args); err != nil {
			log.Debug("Command failed", slog.Any("error", err))
			return err
		}

		return nil
	}
}

// resolveWindow parses a handle argument and checks that it refers to a live window.
func resolveWindow(ctx *ExecutionContext, arg string) (window.Window, error) {
	w, err := ctx.desktop.WindowFromString(arg)
	if err != nil {
		return window.Window{}, err
	}

	if !w.Exists() {
		return window.Window{}, fmt.Errorf("%w: %s", window.ErrInvalidHandle, w.Handle())
	}

	return w, nil
}
