package main

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter-go/we"
)

const serviceName = "counter-server"

func noopShutdown(context.Context) error { return nil }

// installTelemetry registers the configured exporter and returns the function
// that flushes it on shutdown.
func installTelemetry(ctx context.Context, config Config) (func(context.Context) error, error) {
	var exporter trace.SpanExporter
	var err error

	switch config.Telemetry {
	case "", "none":
		return noopShutdown, nil
	case "console":
		exporter, err = we.ConsoleExporter()
	case "honeycomb":
		if config.HoneycombTeam == "" || config.HoneycombDataset == "" {
			return nil, errors.New("honeycomb telemetry requires a team and dataset")
		}
		exporter, err = we.HoneycombExporter(ctx, config.HoneycombTeam, config.HoneycombDataset)
	case "jaeger":
		exporter, err = we.JaegerExporter()
	default:
		return nil, errors.Errorf("unknown telemetry exporter %q", config.Telemetry)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s exporter", config.Telemetry)
	}

	return we.InstallTracerProvider(serviceName, exporter), nil
}
