package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/upkeep/internal/api"
	"github.com/alexanderramin/upkeep/internal/notify"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the summary HTTP server and hourly digest scheduler",
		Long: "Serves the webhook summary endpoint and keeps the hourly email " +
			"digest scheduler running until interrupted. Callers authenticate " +
			"with the bearer token from UPKEEP_API_TOKEN.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			token := os.Getenv("UPKEEP_API_TOKEN")
			if token == "" {
				return fmt.Errorf("UPKEEP_API_TOKEN must be set to serve the summary endpoint")
			}
			auth := api.StaticTokenAuthenticator{token: app.UserID}

			router := api.NewRouter(app.DB, app.Summary, auth, logger)
			server := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			scheduler := notify.NewDigestScheduler(app.Digest, logger)
			if err := scheduler.Start(); err != nil {
				return fmt.Errorf("starting digest scheduler: %w", err)
			}
			defer scheduler.Stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", addr)
				if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			case sig := <-quit:
				logger.Info("shutting down", "signal", sig.String())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultListenAddr(), "HTTP listen address")
	return cmd
}

func defaultListenAddr() string {
	if addr := os.Getenv("UPKEEP_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
