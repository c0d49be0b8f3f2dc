package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// tracker records the start time of an operation and logs completion
// with elapsed duration. It is for sequential use by a single goroutine.
type tracker struct {
	logger *log.Logger
	start  time.Time
}

// newTracker captures the current time as the operation start.
func newTracker(l *log.Logger) *tracker {
	return &tracker{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created.
// Example output: "Resolved 4 views (1.234s)"
func (t *tracker) done(msg string) {
	t.logger.Infof("%s (%s)", msg, time.Since(t.start).Round(time.Millisecond))
}
