package filterer

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerBox struct{ l logrus.FieldLogger }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with filters logging from any goroutine.
var loggerPtr atomic.Pointer[loggerBox]

func init() {
	loggerPtr.Store(&loggerBox{l: newNopLogger()})
}

func newNopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by filterer and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Debug: pipeline construction and per-stage application.
//   - Error: a pipeline stage failed; the error is also returned to the caller.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(&loggerBox{l: l})
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() logrus.FieldLogger {
	return loggerPtr.Load().l
}
