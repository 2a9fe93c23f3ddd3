// Package cmd implements the command-line interface for winspect.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Norgate-AV/winspect/internal/logger"
	"github.com/Norgate-AV/winspect/internal/output"
	"github.com/Norgate-AV/winspect/internal/timeouts"
)

// EnvPrefix prefixes environment variable overrides, e.g. WINSPECT_OUTPUT.
const EnvPrefix = "WINSPECT"

// Config holds all application configuration
type Config struct {
	Verbose       bool
	ShowLogs      bool
	Output        output.Format
	LogDir        string
	PickDelay     time.Duration
	WatchInterval time.Duration
	File          string // Config file that was read, empty if none
}

// configDir is where winspect.yaml is looked for when WINSPECT_CONFIG is unset.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return logger.DefaultLogDir()
	}

	return filepath.Join(dir, logger.AppName)
}

// NewConfigFromFlags creates a Config from parsed command flags. Values come,
// highest first, from flags set on the command line, WINSPECT_* environment
// variables, the config file, and finally the built-in defaults.
func NewConfigFromFlags(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("output", string(output.FormatTable))
	v.SetDefault("delay", timeouts.PickDelay)
	v.SetDefault("interval", timeouts.WatchInterval)

	v.SetConfigType("yaml")

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		// An explicitly named file must exist
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName(logger.AppName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Inherited persistent flags are merged into Flags() once cobra has parsed them
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	format, err := output.ParseFormat(v.GetString("output"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Verbose:       v.GetBool("verbose"),
		ShowLogs:      v.GetBool("logs"),
		Output:        format,
		LogDir:        v.GetString("log-dir"),
		PickDelay:     v.GetDuration("delay"),
		WatchInterval: v.GetDuration("interval"),
		File:          v.ConfigFileUsed(),
	}, nil
}

// loggerOptions maps the config onto the logger's options
func (c *Config) loggerOptions() logger.LoggerOptions {
	return logger.LoggerOptions{
		Verbose:  c.Verbose,
		LogDir:   c.LogDir,
		Compress: true,
	}
}
