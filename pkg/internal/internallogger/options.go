package internallogger

import (
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerWithLevel configures the logger to use the specified log level.
// Unknown level strings fall back to info.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		convertedLevel := ConvertLevel(parseLogLevel(levelStr))
		cfg.Level = zap.NewAtomicLevelAt(convertedLevel)
		*lvl = convertedLevel
	}
}

// LoggerWithDevelopment switches the stdout core to the console encoder.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		cfg.Development = dev
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]interface{}{}
		}
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.InitialFields[key] = value
		}
	}
}

// LoggerWithExperiment stamps every line with the experiment identifier.
func LoggerWithExperiment(id string) LoggerOption {
	return LoggerWithFields(map[string]interface{}{logschema.FieldExperimentID: id})
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]interface{}{}
		}
		cfg.InitialFields[logschema.FieldSchema] = schema
	}
}

// ZapAdapterWithCallerSkip adds frames to the caller skip.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		*callerDepth += skip
	}
}
