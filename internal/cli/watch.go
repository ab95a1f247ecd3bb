package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"domain-auction/internal/broadcast"

	"github.com/spf13/cobra"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	URL string
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow live domain prices from a running server",
		Long: `Connect to a running server's websocket and print every
DOMAINS_UPDATE snapshot until interrupted or the server closes the
connection. Dropped connections are not retried.

Example:
  domain-auction watch --url ws://localhost:8080/ws`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.URL, "url", "ws://localhost:8080/ws", "websocket endpoint of the server")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := broadcast.Dial(ctx, opts.URL)
	if err != nil {
		return err
	}
	defer sub.Close()

	out := cmd.OutOrStdout()
	err = sub.Listen(ctx, func(msg broadcast.Message) {
		printSnapshot(out, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// printSnapshot writes one line per domain of msg
func printSnapshot(w io.Writer, msg broadcast.Message) {
	fmt.Fprintf(w, "%s (%d domains)\n", msg.Type, len(msg.Domains))
	for _, d := range msg.Domains {
		fmt.Fprintf(w, "  %-24s $%-12s ends %s\n",
			d.Name,
			strconv.FormatFloat(d.CurrentBid, 'f', -1, 64),
			d.EndTime.Format("2006-01-02 15:04:05 MST"))
	}
}
