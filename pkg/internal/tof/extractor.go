package tof

import (
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Extractor wraps Extract and EvaluateQuality with structured logging.
type Extractor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.RWMutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewExtractor constructs an extractor.
func NewExtractor(options ...types.Option[*Extractor]) *Extractor {
	e := &Extractor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "EXTRACTOR",
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithLogger attaches loggers to the extractor.
func WithLogger(logger ...types.Logger) types.Option[*Extractor] {
	return func(e *Extractor) {
		e.ConnectLogger(logger...)
	}
}

// WithComponentMetadata overrides the generated name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Extractor] {
	return func(e *Extractor) {
		e.metadataLock.Lock()
		e.componentMetadata.Name = name
		e.componentMetadata.ID = id
		e.metadataLock.Unlock()
	}
}

// GetComponentMetadata returns the extractor's identity.
func (e *Extractor) GetComponentMetadata() types.ComponentMetadata {
	e.metadataLock.RLock()
	defer e.metadataLock.RUnlock()
	return e.componentMetadata
}

// ConnectLogger registers loggers, ignoring nils.
func (e *Extractor) ConnectLogger(loggers ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			e.loggers = append(e.loggers, l)
		}
	}
}

// Extract runs Extract and logs the outcome.
func (e *Extractor) Extract(baseline, measurement types.Waveform) (types.ToFResult, error) {
	res, err := Extract(baseline, measurement)
	if err != nil {
		e.logKV(types.ErrorLevel, "Time shift extraction failed",
			"event", "Extract",
			"result", "FAILURE",
			logschema.FieldStage, types.StageExtract,
			"error", err,
		)
		return res, err
	}
	e.logKV(types.DebugLevel, "Time shift extracted",
		"event", "Extract",
		"result", "SUCCESS",
		logschema.FieldStage, types.StageExtract,
		"time_shift_ns", res.TimeShiftNs,
		"correlation_peak", res.CorrelationPeak,
		"aligned", res.Aligned,
	)
	return res, nil
}

// Quality scores v and logs a warning when it is below the acceptable threshold.
func (e *Extractor) Quality(v []float64) types.Quality {
	q := EvaluateQuality(v)
	if !q.Acceptable {
		e.logKV(types.WarnLevel, "Waveform quality below acceptable",
			"event", "Quality",
			"result", "WARNING",
			"score", q.Score,
			"snr", q.SNR,
		)
	}
	return q
}

func (e *Extractor) logKV(level types.LogLevel, msg string, keysAndValues ...interface{}) {
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
		default:
			logger.Error(msg, fields...)
		}
	}
}
