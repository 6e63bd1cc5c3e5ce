package logger

import "go.uber.org/zap/zapcore"

const (
	// ConfigurationKeyLevel is the key of the minimum enabled logging level.
	ConfigurationKeyLevel = "logger.level"
	// ConfigurationKeyDisableCaller is the key of the setting that stops annotating logs with the caller.
	ConfigurationKeyDisableCaller = "logger.disableCaller"
	// ConfigurationKeyDisableStacktrace is the key of the setting that disables automatic stacktrace capturing.
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	// ConfigurationKeyStacktraceLevel is the key of the level stacktraces are captured and above.
	ConfigurationKeyStacktraceLevel = "logger.stacktraceLevel"
	// ConfigurationKeyEncoding is the key of the logger's encoding.
	ConfigurationKeyEncoding = "logger.encoding"
	// ConfigurationKeyOutputPaths is the key of the list of paths to write logging output to.
	ConfigurationKeyOutputPaths = "logger.outputPaths"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `json:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, all logs are annotated.
	DisableCaller bool `json:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	// By default, stacktraces are captured for the StacktraceLevel and above.
	DisableStacktrace bool `json:"disableStacktrace"`
	// StacktraceLevel is the level stacktraces are captured and above.
	// The default is "panic".
	StacktraceLevel string `json:"stacktraceLevel"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `json:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stdout"].
	OutputPaths []string `json:"outputPaths"`
}

// DefaultCfg holds the default settings of a root logger instance.
var DefaultCfg = Config{
	Level:           "info",
	StacktraceLevel: "panic",
	Encoding:        "console",
	OutputPaths:     []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}
