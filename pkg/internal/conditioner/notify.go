package conditioner

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// ConnectLogger registers loggers, ignoring nils.
func (c *Conditioner) ConnectLogger(loggers ...types.Logger) {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			c.loggers = append(c.loggers, l)
		}
	}
}

// NotifyLoggers fans a structured entry out to every logger whose level admits it.
func (c *Conditioner) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	c.loggersLock.Lock()
	loggers := append([]types.Logger(nil), c.loggers...)
	c.loggersLock.Unlock()

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

func (c *Conditioner) logKV(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	fields := make([]interface{}, 0, len(keysAndValues)+2)
	fields = append(fields, "component", c.GetComponentMetadata())
	fields = append(fields, keysAndValues...)
	c.NotifyLoggers(level, msg, fields...)
}
