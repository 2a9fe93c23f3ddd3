package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winspect/internal/output"
	"github.com/Norgate-AV/winspect/internal/version"
)

// newVersionCmd prints build info. It needs no window API or log file.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := NewConfigFromFlags(cmd)
			if err != nil {
				return err
			}

			return output.New(cmd.OutOrStdout(), cfg.Output).Message(version.GetFullVersion(), version.Get())
		},
	}
}
