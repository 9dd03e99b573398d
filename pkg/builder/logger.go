package builder

import (
	internalLogger "github.com/joeydtaylor/acoustofield/pkg/internal/internallogger"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

type LoggerOption = internalLogger.LoggerOption

type Logger = types.Logger

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = types.FileSink
	StdoutSink SinkType = types.StdoutSink
)

func NewLogger(options ...internalLogger.LoggerOption) types.Logger {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel configures the logger to use the specified log level
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithDevelopment enables or disables development mode
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithExperiment stamps every line with an experiment ID.
func LoggerWithExperiment(id string) LoggerOption {
	return internalLogger.LoggerWithExperiment(id)
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}

// LoggerWithCallerSkip adds frames to the reported caller.
func LoggerWithCallerSkip(skip int) LoggerOption {
	return internalLogger.ZapAdapterWithCallerSkip(skip)
}

// Log schema constants for the standard acoustofield log format.
const (
	LogSchemaID    = logschema.SchemaID
	LogSchemaField = logschema.FieldSchema
)

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

// Export log levels to be accessible under the builder package
const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)
