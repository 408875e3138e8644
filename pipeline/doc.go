// Package pipeline provides a small, typed, linear step runner.
//
// A pipeline is an explicit list of named steps composed with Then; each
// step's output feeds the next step's input. Execution is synchronous and
// fail-fast: the first error aborts the run and propagates to the caller
// wrapped with the failing step's name.
//
// Instrument wraps a step with structured logging, an OpenTelemetry span,
// and optional step metrics. Execute tags the whole run with a unique run ID
// so every log line of one run can be correlated.
//
//	fetch := pipeline.NewStep("fetch", loader.Load)
//	pick := pipeline.Then(fetch, pipeline.NewStep("select", selectBest))
//	result, err := pipeline.Execute(ctx, "best-cereal", pick, struct{}{}, log, metrics)
package pipeline
