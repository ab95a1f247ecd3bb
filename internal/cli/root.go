package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile  string
	SeedFile string
	LogLevel string
}

// NewRootCommand creates the root command. Running it without a subcommand
// starts the server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	serveCmd := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:   "domain-auction",
		Short: "Domain name auction server",
		Long: `Domain name auction server with live price updates.

Serves the auction REST API, pushes DOMAINS_UPDATE snapshots over a
websocket and raises outbid and ending-soon notifications for the
signed-in user.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file read before the environment")
	cmd.PersistentFlags().StringVar(&opts.SeedFile, "seed", "", "YAML fixture to load instead of the demo catalogue (overrides SEED_FILE)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	cmd.AddCommand(serveCmd)
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}
