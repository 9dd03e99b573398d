package conditioner

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Bandpass applies a zero-phase Butterworth band-pass to v sampled at sampleRate Hz.
// On a configuration error it returns an unmodified copy of v together with the error,
// so callers can keep going and still report the problem. Output length always equals input length.
func Bandpass(v []float64, sampleRate float64, cfg types.BandpassConfig) ([]float64, error) {
	cfg = cfg.Normalize()
	out := append([]float64(nil), v...)

	if sampleRate <= 0 {
		return out, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}
	if cfg.LowCutHz <= 0 || cfg.HighCutHz <= 0 || cfg.LowCutHz >= cfg.HighCutHz {
		return out, fmt.Errorf("%w: low=%g high=%g", ErrInvalidCutoff, cfg.LowCutHz, cfg.HighCutHz)
	}
	nyquist := sampleRate / 2
	low, high := cfg.LowCutHz/nyquist, cfg.HighCutHz/nyquist
	if low <= 0 || low >= 1 || high <= 0 || high >= 1 {
		return out, fmt.Errorf("%w: normalised low=%g high=%g outside (0, 1)", ErrInvalidCutoff, low, high)
	}
	if len(v) < 2 {
		return out, fmt.Errorf("%w: %d samples", ErrSignalTooShort, len(v))
	}

	return sosFiltFilt(designBandpass(cfg.Order, low, high), v), nil
}

// Denoise performs multilevel wavelet shrinkage of the detail bands and returns a new
// slice with the same length as v. Unknown wavelet names fall back to sym6 and levels
// deeper than the signal supports are clamped.
func Denoise(v []float64, cfg types.DenoiseConfig) []float64 {
	cfg = cfg.Normalize()
	n := len(v)
	fb, _ := lookupWavelet(cfg.Wavelet)

	level := cfg.Level
	if ml := maxLevel(n, fb.length()); level > ml {
		level = ml
	}
	if level < 1 {
		return append([]float64(nil), v...)
	}

	coeffs := wavedec(v, fb, level)
	for i := 1; i < len(coeffs); i++ {
		sigma := noiseSigma(coeffs[i])
		if sigma < sigmaFloor {
			continue
		}
		coeffs[i] = shrink(coeffs[i], threshold(coeffs[i], sigma, cfg.Rule), cfg.Mode)
	}
	return fitLength(waverec(coeffs, fb), n)
}

// EffectiveLevel reports the decomposition depth Denoise will actually use for n samples.
func EffectiveLevel(n int, cfg types.DenoiseConfig) int {
	cfg = cfg.Normalize()
	fb, _ := lookupWavelet(cfg.Wavelet)
	level := cfg.Level
	if ml := maxLevel(n, fb.length()); level > ml {
		level = ml
	}
	if level < 0 {
		return 0
	}
	return level
}
