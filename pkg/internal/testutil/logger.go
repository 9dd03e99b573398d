// Package testutil holds helpers shared by package tests.
package testutil

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ObserverLogger is a types.Logger backed by a zap observer core so tests can assert on entries.
type ObserverLogger struct {
	level types.LogLevel
	sugar *zap.SugaredLogger
}

// NewObserverLogger returns a debug-level logger and the observed entries.
func NewObserverLogger() (*ObserverLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ObserverLogger{level: types.DebugLevel, sugar: zap.New(core).Sugar()}, logs
}

func (o *ObserverLogger) GetLevel() types.LogLevel { return o.level }

func (o *ObserverLogger) SetLevel(level types.LogLevel) { o.level = level }

func (o *ObserverLogger) Debug(msg string, kv ...interface{}) { o.sugar.Debugw(msg, kv...) }

func (o *ObserverLogger) Info(msg string, kv ...interface{}) { o.sugar.Infow(msg, kv...) }

func (o *ObserverLogger) Warn(msg string, kv ...interface{}) { o.sugar.Warnw(msg, kv...) }

func (o *ObserverLogger) Error(msg string, kv ...interface{}) { o.sugar.Errorw(msg, kv...) }

func (o *ObserverLogger) DPanic(msg string, kv ...interface{}) { o.sugar.DPanicw(msg, kv...) }

func (o *ObserverLogger) Panic(msg string, kv ...interface{}) { o.sugar.Panicw(msg, kv...) }

func (o *ObserverLogger) Fatal(msg string, kv ...interface{}) { o.sugar.Fatalw(msg, kv...) }

func (o *ObserverLogger) Flush() error { return nil }

func (o *ObserverLogger) AddSink(string, types.SinkConfig) error { return nil }

func (o *ObserverLogger) RemoveSink(string) error { return nil }

func (o *ObserverLogger) ListSinks() ([]string, error) { return nil, nil }
