package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fizzkit/fizz.go/configuration"
	"github.com/fizzkit/fizz.go/syncutils"
)

// ErrGlobalLoggerAlreadyInitialized is returned when the global logger was already initialized.
var ErrGlobalLoggerAlreadyInitialized = errors.New("global logger already initialized")

var (
	mu          syncutils.Mutex
	root        = zap.NewNop().Sugar()
	initialized bool

	// level of the global root logger, shared by all its children
	level = zap.NewAtomicLevel()
)

// SetGlobalLogger sets the provided logger as the global logger.
func SetGlobalLogger(logger *Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return ErrGlobalLoggerAlreadyInitialized
	}

	root = logger
	initialized = true

	return nil
}

// NewLogger returns a new named child of the global root logger. It panics if the global logger was not yet
// initialized.
func NewLogger(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		panic("global logger not initialized")
	}

	return root.Named(name)
}

// SetLevel alters the logging level of the global logger and all its children.
func SetLevel(l Level) {
	level.SetLevel(l)
}

// InitGlobalLogger initializes the global logger from the provided configuration.
func InitGlobalLogger(config *configuration.Configuration) error {
	logger, err := newRootLogger(loadConfig(config), level)
	if err != nil {
		return err
	}

	return SetGlobalLogger(logger)
}

// NewRootLoggerFromConfiguration creates a new root logger from the provided configuration.
func NewRootLoggerFromConfiguration(config *configuration.Configuration, opts ...zap.Option) (*Logger, error) {
	return NewRootLogger(loadConfig(config), opts...)
}

// loadConfig reads the logger Config values one by one from the provided configuration.
func loadConfig(config *configuration.Configuration) Config {
	cfg := DefaultCfg

	// config.UnmarshalKey does not recognize a configuration group when defined with pflags
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if val := config.Get(ConfigurationKeyDisableCaller); val != nil {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if val := config.Get(ConfigurationKeyDisableStacktrace); val != nil {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyStacktraceLevel); val != "" {
		cfg.StacktraceLevel = val
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return cfg
}
