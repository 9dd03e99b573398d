package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, level and caller skip before the adapter is built.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of a zap tee of a stdout core plus named sinks.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 2

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	if config.InitialFields == nil {
		config.InitialFields = map[string]interface{}{}
	}
	if _, ok := config.InitialFields[logschema.FieldSchema]; !ok {
		config.InitialFields[logschema.FieldSchema] = logschema.SchemaID
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	encConfig := standardEncoderConfig()

	var encoder zapcore.Encoder
	if config.Development {
		encoder = zapcore.NewConsoleEncoder(encConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encConfig)
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomicLevel),
		baseFields:  fieldsFromMap(config.InitialFields),
		callerDepth: callerDepth,
		callerOn:    true,
		sinks:       make(map[string]sinkEntry),
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()
	return z
}
