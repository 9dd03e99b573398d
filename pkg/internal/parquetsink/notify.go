package parquetsink

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// ConnectLogger attaches loggers to the sink.
func (s *Sink) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			s.loggers = append(s.loggers, l)
		}
	}
}

// NotifyLoggers emits a log event to all configured loggers.
func (s *Sink) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
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
		default:
			logger.Error(msg, keysAndValues...)
		}
	}
}
