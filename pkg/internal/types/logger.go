package types

// LogLevel represents the severity levels for logging within the system.
type LogLevel int

// SinkType defines the type of logger sink.
type SinkType string

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

const (
	DebugLevel  LogLevel = iota // DebugLevel indicates debug messages.
	InfoLevel                   // InfoLevel indicates informational messages.
	WarnLevel                   // WarnLevel indicates warning messages.
	ErrorLevel                  // ErrorLevel indicates error messages.
	DPanicLevel                 // DPanicLevel indicates panic in development, error in production.
	PanicLevel                  // PanicLevel indicates panic messages.
	FatalLevel                  // FatalLevel indicates fatal error messages.
)

// SinkConfig defines the configuration for a logging sink.
type SinkConfig struct {
	Type   string                 // Type of sink, "file" or "stdout"
	Config map[string]interface{} // Detailed configuration specific to the sink type
}

// Logger defines the interface for logging across the library.
type Logger interface {
	GetLevel() LogLevel                              // GetLevel returns the current logging level of the logger.
	SetLevel(LogLevel)                               // SetLevel sets the logging level of the logger.
	Debug(msg string, keysAndValues ...interface{})  // Debug logs a debug message.
	Info(msg string, keysAndValues ...interface{})   // Info logs an informational message.
	Warn(msg string, keysAndValues ...interface{})   // Warn logs a warning message.
	Error(msg string, keysAndValues ...interface{})  // Error logs an error message.
	DPanic(msg string, keysAndValues ...interface{}) // DPanic logs a critical message; panics in development.
	Panic(msg string, keysAndValues ...interface{})  // Panic logs a message and panics.
	Fatal(msg string, keysAndValues ...interface{})  // Fatal logs a fatal error and causes the application to exit.
	Flush() error
	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}
