package tracefmt

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// HumanReadableLogger returns a human-readable logr.Logger
// implementation using zap, suitable as the destination for rendered
// span fields.
func HumanReadableLogger(w io.Writer, lvl zapcore.LevelEnabler) logr.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	return newZapLogger(zapcore.NewConsoleEncoder(encoderConfig), w, lvl)
}

// JSONLogger returns a machine-readable logr.Logger implementation
// using zap's JSON encoder.
func JSONLogger(w io.Writer, lvl zapcore.LevelEnabler) logr.Logger {
	return newZapLogger(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, lvl)
}

func newZapLogger(encoder zapcore.Encoder, w io.Writer, lvl zapcore.LevelEnabler) logr.Logger {
	sink := zapcore.AddSync(w)
	errLevel := zap.NewAtomicLevelAt(zap.ErrorLevel)
	log := zap.New(zapcore.NewCore(encoder, sink, lvl)).
		WithOptions(
			zap.AddCallerSkip(1),
			zap.ErrorOutput(sink),
			zap.AddStacktrace(errLevel),
		)
	return zapr.NewLogger(log)
}
