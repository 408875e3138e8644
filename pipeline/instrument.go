package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/cerealpipe/logger"
	"github.com/kbukum/cerealpipe/observability"
)

// Instrument wraps a step with structured logging, an OpenTelemetry span,
// and optional metrics. Errors are wrapped with the step name; the wrapped
// cause stays reachable through errors.Is/As.
func Instrument[I, O any](s Step[I, O], log *logger.Logger, metrics *observability.Metrics) Step[I, O] {
	return Step[I, O]{
		Name: s.Name,
		Fn: func(ctx context.Context, in I) (O, error) {
			ctx, span := observability.StartSpan(ctx, "pipeline."+s.Name)
			defer span.End()

			log.Debug("step started", logger.Fields(logger.FieldStep, s.Name))
			start := time.Now()
			out, err := s.Fn(ctx, in)
			elapsed := time.Since(start)

			if err != nil {
				observability.SetSpanError(ctx, err)
				if metrics != nil {
					metrics.RecordStep(ctx, s.Name, "error", elapsed)
				}
				log.Error("step failed", logger.Fields(
					logger.FieldStep, s.Name,
					logger.FieldDuration, elapsed.Milliseconds(),
					logger.FieldError, err.Error(),
				))
				var zero O
				return zero, fmt.Errorf("%s: %w", s.Name, err)
			}

			if metrics != nil {
				metrics.RecordStep(ctx, s.Name, "ok", elapsed)
			}
			log.Debug("step completed", logger.DurationFields(s.Name, elapsed))
			return out, nil
		},
	}
}

// Execute runs a step as a complete pipeline run: it assigns a unique run
// ID, logs run start and completion, opens a run-level span, and records
// run metrics. The step's own error is returned unmodified.
func Execute[I, O any](ctx context.Context, name string, s Step[I, O], in I, log *logger.Logger, metrics *observability.Metrics) (O, error) {
	runID := uuid.NewString()
	runLog := log.WithFields(map[string]interface{}{logger.FieldRunID: runID})

	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineRun)
	defer span.End()
	observability.SetSpanAttribute(ctx, "pipeline", name)
	observability.SetSpanAttribute(ctx, "run_id", runID)

	runLog.Info("pipeline run started", logger.Fields("pipeline", name))
	start := time.Now()
	out, err := Run(ctx, s, in)
	elapsed := time.Since(start)

	if err != nil {
		observability.SetSpanError(ctx, err)
		if metrics != nil {
			metrics.RecordRun(ctx, name, "error", elapsed)
		}
		runLog.Error("pipeline run failed", logger.Fields(
			"pipeline", name,
			logger.FieldDuration, elapsed.Milliseconds(),
			logger.FieldError, err.Error(),
		))
		var zero O
		return zero, err
	}

	if metrics != nil {
		metrics.RecordRun(ctx, name, "ok", elapsed)
	}
	runLog.Info("pipeline run completed", logger.Fields(
		"pipeline", name,
		logger.FieldDuration, elapsed.Milliseconds(),
	))
	return out, nil
}
