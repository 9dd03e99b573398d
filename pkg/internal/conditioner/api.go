package conditioner

import (
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// GetComponentMetadata returns the conditioner's identity.
func (c *Conditioner) GetComponentMetadata() types.ComponentMetadata {
	c.configLock.RLock()
	defer c.configLock.RUnlock()
	return c.componentMetadata
}

// SetComponentMetadata sets name and ID.
func (c *Conditioner) SetComponentMetadata(name string, id string) {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	c.componentMetadata.Name = name
	c.componentMetadata.ID = id
}

// Bandpass returns the current band-pass configuration.
func (c *Conditioner) Bandpass() types.BandpassConfig {
	c.configLock.RLock()
	defer c.configLock.RUnlock()
	return c.bandpass
}

// Denoise returns the current denoise configuration.
func (c *Conditioner) Denoise() types.DenoiseConfig {
	c.configLock.RLock()
	defer c.configLock.RUnlock()
	return c.denoise
}

// SetBandpass replaces the band-pass configuration.
func (c *Conditioner) SetBandpass(cfg types.BandpassConfig) {
	c.configLock.Lock()
	c.bandpass = cfg.Normalize()
	c.configLock.Unlock()
}

// SetDenoise replaces the denoise configuration. Unknown wavelet names are kept
// as given and resolved to sym6 when the stage runs.
func (c *Conditioner) SetDenoise(cfg types.DenoiseConfig) {
	c.configLock.Lock()
	c.denoise = cfg.Normalize()
	c.configLock.Unlock()
}

// Stages returns the enabled stages for a waveform sampled at sampleRate, in execution order.
// The band-pass stage never fails the chain: on a configuration error it passes the
// signal through and records the error in *bandpassErr.
func (c *Conditioner) Stages(sampleRate float64, bandpassErr *error) []types.Transformer[[]float64] {
	bp, dn := c.Bandpass(), c.Denoise()
	stages := make([]types.Transformer[[]float64], 0, 2)

	if bp.Enabled {
		stages = append(stages, func(v []float64) ([]float64, error) {
			out, err := Bandpass(v, sampleRate, bp)
			if err != nil {
				if bandpassErr != nil {
					*bandpassErr = err
				}
				c.logKV(types.WarnLevel, "Bandpass skipped",
					"event", "Bandpass",
					"result", "FALLBACK",
					logschema.FieldStage, types.StageCondition,
					"error", err,
				)
			}
			return out, nil
		})
	}

	if dn.Enabled {
		if !KnownWavelet(dn.Wavelet) {
			c.logKV(types.WarnLevel, "Unknown wavelet, using sym6",
				"event", "Denoise",
				"result", "FALLBACK",
				"wavelet", dn.Wavelet,
			)
		}
		stages = append(stages, func(v []float64) ([]float64, error) {
			return Denoise(v, dn), nil
		})
	}
	return stages
}

// Condition runs every enabled stage over w and returns a new waveform with the same
// time axis. The returned error, when non-nil, describes a band-pass configuration
// problem; the waveform is still valid and carries the unfiltered (but denoised) signal.
func (c *Conditioner) Condition(w types.Waveform) (types.Waveform, error) {
	var bandpassErr error
	v := append([]float64(nil), w.Voltages...)

	for _, stage := range c.Stages(w.SampleRate, &bandpassErr) {
		next, err := stage(v)
		if err != nil {
			return w.Clone(), err
		}
		v = next
	}

	c.logKV(types.DebugLevel, "Waveform conditioned",
		"event", "Condition",
		"result", "SUCCESS",
		"samples", len(v),
	)
	return w.WithVoltages(v), bandpassErr
}

// EvaluateDenoise compares SNR and quality before and after the denoise stage alone.
func (c *Conditioner) EvaluateDenoise(w types.Waveform) types.DenoiseEffect {
	dn := c.Denoise()
	dn.Enabled = true
	denoised := Denoise(w.Voltages, dn)

	before := tof.EvaluateQuality(w.Voltages)
	after := tof.EvaluateQuality(denoised)
	effect := types.DenoiseEffect{
		OriginalSNR:   before.SNR,
		DenoisedSNR:   after.SNR,
		ImprovementDB: after.SNR - before.SNR,
		Original:      before,
		Denoised:      after,
	}
	if math.IsNaN(effect.ImprovementDB) {
		effect.ImprovementDB = 0
	}

	c.logKV(types.InfoLevel, "Denoise evaluated",
		"event", "EvaluateDenoise",
		"result", "SUCCESS",
		"original_snr", effect.OriginalSNR,
		"denoised_snr", effect.DenoisedSNR,
		"improvement_db", effect.ImprovementDB,
	)
	return effect
}
