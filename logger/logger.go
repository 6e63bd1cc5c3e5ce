package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger instances are able to log messages at different severity levels.
type Logger = zap.SugaredLogger

// Level is an alias of zapcore.Level.
type Level = zapcore.Level

const (
	// LevelDebug logs are typically voluminous, and are usually disabled in production.
	LevelDebug = zapcore.DebugLevel
	// LevelInfo is the default logging priority.
	LevelInfo = zapcore.InfoLevel
	// LevelWarn logs are more important than Info, but don't need individual human review.
	LevelWarn = zapcore.WarnLevel
	// LevelError logs are high-priority. If an application is running smoothly, it shouldn't generate any
	// error-level logs.
	LevelError = zapcore.ErrorLevel
	// LevelPanic logs a message, then panics.
	LevelPanic = zapcore.PanicLevel
	// LevelFatal logs a message, then calls os.Exit(1).
	LevelFatal = zapcore.FatalLevel
)

// ErrInvalidEncoding is returned if the encoding of the logger config is invalid.
var ErrInvalidEncoding = errors.New("invalid encoding")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config, opts ...zap.Option) (*Logger, error) {
	return newRootLogger(cfg, zap.NewAtomicLevel(), opts...)
}

// newRootLogger creates a new root logger that uses the given atomic level as its level.
func newRootLogger(cfg Config, level zap.AtomicLevel, opts ...zap.Option) (*Logger, error) {
	var options []zap.Option

	// configure the level
	levelValue := LevelInfo
	if cfg.Level != "" {
		var err error
		if levelValue, err = zapcore.ParseLevel(cfg.Level); err != nil {
			return nil, errors.Errorf("unable to parse log level: %w", err)
		}
	}
	level.SetLevel(levelValue)

	// create the encoder
	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(defaultEncoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(defaultEncoderConfig)
	default:
		return nil, ErrInvalidEncoding
	}

	// open the output paths
	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}
	sink, _, err := zap.Open(outputPaths...)
	if err != nil {
		return nil, errors.Errorf("unable to open output paths: %w", err)
	}

	if !cfg.DisableCaller {
		options = append(options, zap.AddCaller())
	}

	if !cfg.DisableStacktrace {
		stacktraceLevel := zapcore.PanicLevel
		if cfg.StacktraceLevel != "" {
			if stacktraceLevel, err = zapcore.ParseLevel(cfg.StacktraceLevel); err != nil {
				return nil, errors.Errorf("unable to parse stacktrace level: %w", err)
			}
		}
		options = append(options, zap.AddStacktrace(stacktraceLevel))
	}

	options = append(options, opts...)

	return zap.New(zapcore.NewCore(encoder, sink, level), options...).Sugar(), nil
}
