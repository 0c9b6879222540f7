package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/IndexAdvisor/advisor"
	"github.com/dshills/IndexAdvisor/api"
	"github.com/dshills/IndexAdvisor/config"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the index advisor REST API server",
		Long: `Run the index advisor REST API server.

Serves recommendation and parameter validation over HTTP, with health and
Prometheus metrics endpoints. Configuration is read from ~/.indexadvisor.yml
(or --config), with INDEXADVISOR_* environment variables taking precedence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			logger := cfg.Logging.NewLogger()
			server := api.NewServer(advisor.New(), cfg.Server.ToServerConfig(), logger)

			// Start server in a goroutine
			errCh := make(chan error, 1)
			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			// Wait for interrupt signal
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
			}

			logger.Info().Msg("shutting down server")

			// Graceful shutdown
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}

			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}
