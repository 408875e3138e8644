package cereal

import (
	"context"

	"github.com/kbukum/cerealpipe/frame"
	"github.com/kbukum/cerealpipe/logger"
	"github.com/kbukum/cerealpipe/observability"
	"github.com/kbukum/cerealpipe/pipeline"
)

// PipelineName identifies the job in logs, spans, and metrics.
const PipelineName = "best-preworkout-cereal"

// Source produces the dataset for a run. *fetch.Loader implements it.
type Source interface {
	Load(ctx context.Context) (*frame.Frame, error)
}

// Job is the configured best-preworkout-cereal pipeline.
type Job struct {
	source   Source
	reporter Reporter
	log      *logger.Logger
	metrics  *observability.Metrics
	step     pipeline.Step[struct{}, string]
}

// JobOption configures a Job.
type JobOption func(*Job)

// WithLogger sets the job's logger.
func WithLogger(log *logger.Logger) JobOption {
	return func(j *Job) { j.log = log }
}

// WithMetrics attaches pipeline metrics to the job.
func WithMetrics(m *observability.Metrics) JobOption {
	return func(j *Job) { j.metrics = m }
}

// NewJob wires the linear pipeline: fetch, preprocess, select, report.
// Each step is instrumented with logging, a span, and step metrics.
func NewJob(source Source, reporter Reporter, opts ...JobOption) *Job {
	j := &Job{
		source:   source,
		reporter: reporter,
		log:      logger.WithComponent("pipeline"),
	}
	for _, opt := range opts {
		opt(j)
	}

	fetchStep := pipeline.NewStep("fetch", func(ctx context.Context, _ struct{}) (*frame.Frame, error) {
		f, err := j.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		if j.metrics != nil {
			src := PipelineName
			if u, ok := j.source.(interface{ URL() string }); ok {
				src = u.URL()
			}
			j.metrics.RecordRowsLoaded(ctx, src, f.Len())
		}
		observability.SetSpanAttribute(ctx, "rows", f.Len())
		return f, nil
	})
	preprocessStep := pipeline.NewStep("preprocess", func(_ context.Context, f *frame.Frame) (*frame.Frame, error) {
		return Preprocess(f)
	})
	selectStep := pipeline.NewStep("select", func(_ context.Context, f *frame.Frame) (string, error) {
		return HighestProtein(f)
	})
	reportStep := pipeline.NewStep("report", func(_ context.Context, name string) (string, error) {
		j.reporter.Report(name)
		return name, nil
	})

	j.step = pipeline.Then(
		pipeline.Then(
			pipeline.Then(
				pipeline.Instrument(fetchStep, j.log, j.metrics),
				pipeline.Instrument(preprocessStep, j.log, j.metrics),
			),
			pipeline.Instrument(selectStep, j.log, j.metrics),
		),
		pipeline.Instrument(reportStep, j.log, j.metrics),
	)
	return j
}

// Run executes the pipeline once and returns the selected cereal name.
// The first failing step aborts the run; its error propagates to the caller.
func (j *Job) Run(ctx context.Context) (string, error) {
	return pipeline.Execute(ctx, PipelineName, j.step, struct{}{}, j.log, j.metrics)
}

// Runnable adapts the job for callers that only care about the error.
func (j *Job) Runnable() *pipeline.Runnable {
	return pipeline.NewRunnable(func(ctx context.Context) error {
		_, err := j.Run(ctx)
		return err
	})
}
