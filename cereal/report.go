package cereal

import (
	"fmt"

	"github.com/kbukum/cerealpipe/logger"
)

// Reporter emits the selected cereal to an output sink.
type Reporter interface {
	Report(name string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(name string)

func (f ReporterFunc) Report(name string) { f(name) }

// LogReporter reports through the structured logger at info level.
type LogReporter struct {
	log *logger.Logger
}

// NewLogReporter creates a LogReporter. A nil logger falls back to the
// global one.
func NewLogReporter(log *logger.Logger) *LogReporter {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &LogReporter{log: log.WithComponent("reporter")}
}

// Report emits the result line.
func (r *LogReporter) Report(name string) {
	r.log.Info(fmt.Sprintf("Most protein-rich cereal: %s", name))
}
