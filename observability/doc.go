// Package observability provides OpenTelemetry tracing and metrics
// integration for the cereal pipeline.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("cerealpipe"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "pipeline.fetch")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("cerealpipe"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("cerealpipe"))
//	metrics.RecordStep(ctx, "preprocess", "ok", duration)
//
// Both are opt-in: nothing is exported unless an endpoint is configured, so a
// bare run performs no network calls beyond the dataset fetch.
package observability
