package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"domain-auction/internal/broadcast"
	"domain-auction/internal/server"
	"domain-auction/internal/watcher"
	"domain-auction/utils"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the auction HTTP and websocket server",
		Long: `Run the auction HTTP and websocket server.

Settings come from the environment (PORT, LOG_LEVEL, SEED_FILE, ...) after
the --env-file is loaded. The server stops gracefully on SIGINT or SIGTERM.

Example:
  domain-auction serve
  PORT=9090 domain-auction serve --seed ./fixtures/demo.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, rootOpts)
		},
	}
}

func runServer(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := broadcast.NewHub(a.ledger, cfg.WSSendBuffer, cfg.WSPingInterval, a.collector)
	a.ledger.Subscribe(hub)
	go hub.Run(ctx)

	w := watcher.New(a.ledger, cfg.WatchInterval, cfg.EndingSoonThreshold, nil)
	go w.Run(ctx)

	limiter := server.NewRateLimiter(server.RateLimiterConfig{
		PerMinute:       cfg.BidRatePerMinute,
		Burst:           cfg.BidRateBurst,
		CleanupInterval: server.DefaultRateLimiterConfig().CleanupInterval,
	})
	defer limiter.Stop()

	router := server.SetupRouter(a.ledger, server.RouterOptions{
		WebSocket:  hub.ServeWS,
		BidLimiter: limiter,
		Metrics:    a.collector,
		Gatherer:   a.registry,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("cli: server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	utils.Info("shutting down auction server", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cli: shutdown: %w", err)
	}
	utils.Info("auction server stopped", nil)
	return nil
}
