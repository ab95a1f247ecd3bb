package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <domains|users|bids>",
		Short: "Print a collection of the seeded store as JSON",
		Long: `Print a collection of the seeded store as indented JSON.

Password hashes are never included.

Example:
  domain-auction export bids
  domain-auction export users --seed ./fixtures/demo.yaml > users.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			out, err := a.ledger.Export(args[0])
			if err != nil {
				return fmt.Errorf("cli: export %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
