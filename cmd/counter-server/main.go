package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newRootCommand(config Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "counter-server",
		Short:        "Serves accumulating counters over HTTP.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, config)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Addr, "addr", config.Addr, "listen address")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	flags.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format (json|console)")
	flags.StringVar(&config.Telemetry, "telemetry", config.Telemetry, "trace exporter (none|console|honeycomb|jaeger)")
	flags.StringVar(&config.HoneycombTeam, "honeycomb-team", config.HoneycombTeam, "honeycomb api key")
	flags.StringVar(&config.HoneycombDataset, "honeycomb-dataset", config.HoneycombDataset, "honeycomb dataset")

	return cmd
}

func run(ctx context.Context, config Config) error {
	if err := configureLogging(os.Stderr, config.LogLevel, config.LogFormat); err != nil {
		return err
	}

	shutdownTelemetry, err := installTelemetry(ctx, config)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              config.Addr,
		Handler:           live(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		log.Info().Str("addr", config.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()

	select {
	case err := <-failed:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdown); err != nil {
		return errors.Wrap(err, "failed to shut down server")
	}

	if err := shutdownTelemetry(shutdown); err != nil {
		log.Warn().Err(err).Msg("failed to flush telemetry")
	}

	return nil
}

func main() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := newRootCommand(config).Execute(); err != nil {
		os.Exit(1)
	}
}
