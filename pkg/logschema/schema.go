package logschema

// Log schema constants for acoustofield structured logs.
const (
	SchemaID    = "acoustofield.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent    = "component"
	FieldEvent        = "event"
	FieldResult       = "result"
	FieldError        = "error"
	FieldExperimentID = "experiment_id"
	FieldPointIndex   = "point_index"
	FieldStage        = "stage"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
