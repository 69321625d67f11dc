// Package application assembles the quoting service from configuration and
// runs its servers until the context is cancelled.
package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"shipquote/internal/config"
	"shipquote/internal/domain/service/extract"
	"shipquote/internal/domain/service/quote"
	"shipquote/internal/domain/service/shipment"
	"shipquote/internal/infrastructure/places"
	"shipquote/internal/server"
	"shipquote/pkg/application/modules"
	"shipquote/pkg/contextx"
	"shipquote/pkg/logx"
	"shipquote/pkg/metrics"
	"shipquote/pkg/version"
)

const Name = "shipquote"

type warmer interface {
	Warm(ctx context.Context) error
}

func NewLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := logx.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logx.ParseLevel: %w", err)
	}

	return logx.New(w, level, cfg.Format).With(
		slog.String(logx.FieldAppName, Name),
		slog.String(logx.FieldAppVersion, version.Get().String()),
	), nil
}

func NewShipmentService(cfg config.Quote, recognizer places.Recognizer) *shipment.Service {
	return shipment.NewService(
		extract.NewExtractor(recognizer),
		quote.NewQuoter(cfg.Carriers(), cfg.VolumeRate),
	)
}

// NewRecognizer builds the configured place recognizer. With warm set, a
// recognizer that needs to load a model does so before returning.
func NewRecognizer(ctx context.Context, cfg config.Recognizer, warm bool) (places.Recognizer, error) {
	recognizer, err := places.New(cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("places.New: %w", err)
	}

	if w, ok := recognizer.(warmer); ok && warm {
		if err := w.Warm(ctx); err != nil {
			return nil, fmt.Errorf("%s.Warm: %w", recognizer.Name(), err)
		}
	}

	return recognizer, nil
}

// Run serves the API, probe and metrics endpoints. The readiness probe
// fails until the place recognizer has loaded.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	recognizer, err := NewRecognizer(ctx, cfg.Recognizer, false)
	if err != nil {
		return err
	}

	log.Info("place recognizer", slog.String(logx.FieldRecognizer, recognizer.Name()))

	registry := metrics.NewRegistry()

	srv := server.NewServer(
		server.NewQuoteServer(
			NewShipmentService(cfg.Quote, recognizer),
			server.NewMetrics(registry),
		),
	)

	g, ctx := errgroup.WithContext(ctx)

	if w, ok := recognizer.(warmer); ok {
		g.Go(func() error {
			if err := w.Warm(ctx); err != nil {
				return fmt.Errorf("%s.Warm: %w", recognizer.Name(), err)
			}

			log.Info("place recognizer ready", slog.String(logx.FieldRecognizer, recognizer.Name()))

			return nil
		})
	}

	modules.ProbeServer{
		Name:          Name,
		Version:       version.Get().String(),
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         recognizer.Ready,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, server.NewHandler(log, srv, logx.NewSensitiveDataMasker(), cfg.Log.FieldMaxLen))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
