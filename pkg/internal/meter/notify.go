package meter

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// ConnectLogger attaches loggers to the meter.
func (m *Meter) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}
	m.loggersLock.Lock()
	m.loggers = append(m.loggers, loggers...)
	m.loggersLock.Unlock()
}

// NotifyLoggers emits a log event to all configured loggers.
func (m *Meter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range m.snapshotLoggers() {
		if logger == nil || logger.GetLevel() > level {
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

func (m *Meter) snapshotLoggers() []types.Logger {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	if len(m.loggers) == 0 {
		return nil
	}
	loggers := make([]types.Logger, len(m.loggers))
	copy(loggers, m.loggers)
	return loggers
}
