package analytics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-statistics/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-statistics/internal/analytics"

// Engine computes read-only statistics over a StatisticsRepository. It keeps
// no state between calls.
type Engine struct {
	repo     domain.StatisticsRepository
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time

	tracer   trace.Tracer
	duration metric.Float64Histogram
}

type Option func(*Engine)

// WithLocation sets the calendar used for bucket keys and the week window.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithClock overrides the reference instant used for the week window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(repo domain.StatisticsRepository, opts ...Option) *Engine {
	e := &Engine{
		repo:     repo,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		location: time.UTC,
		now:      time.Now,
		tracer:   otel.Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(e)
	}

	histogram, err := otel.Meter(instrumentationName).Float64Histogram(
		"statistics.pipeline.duration",
		metric.WithDescription("Duration of a single statistics pipeline"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		e.logger.Warn("failed to create pipeline duration histogram", "error", err)
		histogram = noop.Float64Histogram{}
	}
	e.duration = histogram

	return e
}

// observe runs one named pipeline inside a span, records its duration and
// prefixes any error with the pipeline name.
func (e *Engine) observe(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := e.tracer.Start(ctx, "statistics."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	e.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), metric.WithAttributes(
		attribute.String("pipeline", name),
		attribute.String("status", status),
	))

	e.logger.DebugContext(ctx, "statistics pipeline finished", "pipeline", name, "duration", elapsed, "status", status)

	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}
