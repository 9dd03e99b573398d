package config

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/codec"
	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/validator"
)

const hzPerMHz = 1e6

// BandpassConfig converts MHz cutoffs to Hz.
func (c ConditionerConfig) BandpassConfig() types.BandpassConfig {
	b := c.Bandpass
	return types.BandpassConfig{
		Enabled:   b.Enabled,
		LowCutHz:  b.LowCutMHz * hzPerMHz,
		HighCutHz: b.HighCutMHz * hzPerMHz,
		Order:     b.Order,
	}.Normalize()
}

// DenoiseConfig fills unknown rule or mode names with their defaults.
func (c ConditionerConfig) DenoiseConfig() types.DenoiseConfig {
	d := c.Denoise
	return types.DenoiseConfig{
		Enabled: d.Enabled,
		Wavelet: d.Wavelet,
		Level:   d.Level,
		Rule:    types.ThresholdRule(d.ThresholdRule),
		Mode:    types.ThresholdMode(d.ThresholdMode),
	}.Normalize()
}

// Configured reports whether any calibration source is set.
func (c CalibrationConfig) Configured() bool {
	return c.File != "" || c.K != 0 || c.Slope != 0
}

// Model builds the calibration model from the first configured source and
// applies the baseline stress.
func (c CalibrationConfig) Model() (calibration.Model, error) {
	var (
		m   calibration.Model
		err error
	)
	switch {
	case c.File != "":
		var coeff types.CalibrationCoefficient
		if coeff, err = calibration.LoadFile(c.File); err == nil {
			m, err = calibration.NewModel(coeff)
		}
	case c.K != 0:
		m, err = calibration.FromK(c.K, c.RSquared)
	default:
		m, err = calibration.NewModel(types.CalibrationCoefficient{
			Slope:     c.Slope,
			Intercept: c.Intercept,
			RSquared:  c.RSquared,
			Source:    c.Source,
			Direction: c.Direction,
		})
	}
	if err != nil {
		return calibration.Model{}, err
	}
	return m.WithBaselineStress(c.BaselineStress), nil
}

// Limits converts the validation section; zero fields take the defaults.
func (c ValidationConfig) Limits() validator.Limits {
	l := validator.DefaultLimits()
	if c.MaxTimeShiftNs > 0 {
		l.MaxTimeShiftNs = c.MaxTimeShiftNs
	}
	if c.StressWindowMPa > 0 {
		l.StressWindowMPa = c.StressWindowMPa
	}
	if c.MaxNeighborDiffMPa > 0 {
		l.MaxNeighborDiffMPa = c.MaxNeighborDiffMPa
	}
	return l
}

// Params converts the interpolation section.
func (c InterpolationConfig) Params() interpolate.Params {
	return interpolate.Params{
		Resolution:  c.Resolution,
		Method:      types.InterpolationMethod(c.Method),
		Smooth:      c.Smooth,
		SmoothSigma: c.SmoothSigma,
	}
}

// WaveformCompression parses the storage compression name.
func (c StorageConfig) WaveformCompression() (codec.Compression, error) {
	return codec.ParseCompression(c.Compression)
}
