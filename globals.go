package tracefmt

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
)

//nolint:gochecknoglobals
var (
	logger   = logr.Discard()
	loggerMu = &sync.Mutex{}
)

// GetGlobalLogger gets the globally-registered Logger in this package.
// The default Logger implementation is logr.Discard().
func GetGlobalLogger() Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	return logger
}

// SetGlobalLogger sets the globally-registered Logger in this package.
// It is the default destination for rendered span fields emitted by
// the RenderingProcessor.
func SetGlobalLogger(log Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger = log
}

// LoggerFromContext resolves a Logger from the given context using
// logr.FromContext, falling back to GetGlobalLogger() when the context
// carries none.
func LoggerFromContext(ctx context.Context) Logger {
	if log := logr.FromContext(ctx); log != nil {
		return log
	}
	return GetGlobalLogger()
}
