package experiment

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/sensor"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// ConnectLogger attaches loggers to the experiment.
func (e *Experiment) ConnectLogger(loggers ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			e.loggers = append(e.loggers, l)
		}
	}
}

// ConnectResultSink attaches sinks that receive every later point result and
// generated field.
func (e *Experiment) ConnectResultSink(sinks ...types.ResultSink) {
	e.sinksLock.Lock()
	defer e.sinksLock.Unlock()
	for _, s := range sinks {
		if s != nil {
			e.sinks = append(e.sinks, s)
		}
	}
}

func (e *Experiment) snapshotSinks() []types.ResultSink {
	e.sinksLock.Lock()
	defer e.sinksLock.Unlock()
	return append([]types.ResultSink(nil), e.sinks...)
}

// ConnectSensor attaches sensors whose callbacks fire after each event.
func (e *Experiment) ConnectSensor(sensors ...*sensor.Sensor) {
	e.sensorsLock.Lock()
	defer e.sensorsLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			e.sensors = append(e.sensors, s)
		}
	}
}

func (e *Experiment) snapshotSensors() []*sensor.Sensor {
	e.sensorsLock.Lock()
	defer e.sensorsLock.Unlock()
	return append([]*sensor.Sensor(nil), e.sensors...)
}

func (e *Experiment) logKV(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	e.loggersLock.Lock()
	loggers := append([]types.Logger(nil), e.loggers...)
	e.loggersLock.Unlock()
	if len(loggers) == 0 {
		return
	}

	fields := make([]interface{}, 0, len(keysAndValues)+2)
	fields = append(fields, "component", e.GetComponentMetadata())
	fields = append(fields, keysAndValues...)
	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, fields...)
		case types.InfoLevel:
			logger.Info(msg, fields...)
		case types.WarnLevel:
			logger.Warn(msg, fields...)
		case types.ErrorLevel:
			logger.Error(msg, fields...)
		case types.DPanicLevel:
			logger.DPanic(msg, fields...)
		case types.PanicLevel:
			logger.Panic(msg, fields...)
		case types.FatalLevel:
			logger.Fatal(msg, fields...)
		}
	}
}
