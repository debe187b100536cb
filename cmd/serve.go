package cmd

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

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loshu.dev/pkg/loshu/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveAddrFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the square generator over HTTP",
		Long: `Start an HTTP server exposing POST /api/magic-squares/generate, a /healthz
probe and Prometheus metrics on /metrics. The log level follows edits to
the configuration file while the server runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watchConfig()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			logger := slog.Default()
			handler := server.NewHandler(synthesizer, logger, server.NewMetrics(reg))
			srv := server.New(
				viper.GetString(serveAddrConfigKey),
				server.NewRouter(handler, reg),
				viper.GetDuration(serveTimeoutConfigKey),
			)

			cmd.Printf("listening on %s\n", srv.Addr)

			return runServer(ctx, srv, logger)
		},
	}

	cmd.Flags().StringVar(&serveAddrFlag, addrFlagName, viper.GetString(serveAddrConfigKey), "address to listen on")
	bindFlagToConfig(cmd.Flags().Lookup(addrFlagName), serveAddrConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServer serves until ctx is cancelled, then shuts srv down gracefully.
func runServer(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting server", "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve %s: %w", srv.Addr, err)
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "addr", srv.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return <-errCh
}

// watchConfig re-applies the log level whenever the config file changes.
func watchConfig() {
	if _, err := os.Stat(viper.ConfigFileUsed()); err != nil {
		slog.Debug("No config file to watch", "path", viper.ConfigFileUsed())
		return
	}

	viper.OnConfigChange(onConfigChange)
	viper.WatchConfig()
}

func onConfigChange(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	level := configuredLevel(verboseFlag)
	logLevel.Set(level)
	slog.Info("Config reloaded", "file", e.Name, "log_level", level.String())
}
