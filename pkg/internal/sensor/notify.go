package sensor

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// ConnectLogger registers loggers for sensor output.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			s.loggers = append(s.loggers, logger)
		}
	}
}

// NotifyLoggers sends a structured entry to every logger enabled for level.
func (s *Sensor) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (s *Sensor) logKV(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	fields := make([]interface{}, 0, len(keysAndValues)+2)
	fields = append(fields, "component", s.componentMetadata)
	fields = append(fields, keysAndValues...)
	s.NotifyLoggers(level, msg, fields...)
}
