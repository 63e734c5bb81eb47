package observability

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks is a PrinterHooks implementation that emits debug-level log
// records for every render call using the charmbracelet/log library.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates logging hooks backed by logger.
// If logger is nil, the package-level default logger is used.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

// NewLogHooksWriter creates logging hooks with a new logger writing to w.
// The logger reports timestamps and filters at debug level, matching the
// verbose mode of formatter front-ends.
func NewLogHooksWriter(w io.Writer) *LogHooks {
	return &LogHooks{logger: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})}
}

// OnRenderStart logs the beginning of a render call.
func (h *LogHooks) OnRenderStart(nodes int) {
	h.logger.Debug("render start", "nodes", nodes)
}

// OnRenderComplete logs a finished render call with its output size and duration.
func (h *LogHooks) OnRenderComplete(nodes, bytes int, duration time.Duration) {
	h.logger.Debug("render complete", "nodes", nodes, "bytes", bytes, "duration", duration)
}
