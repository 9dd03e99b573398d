package types

// ThresholdRule selects how the per-level wavelet threshold is computed.
type ThresholdRule string

// ThresholdMode selects how coefficients are shrunk once a threshold is known.
type ThresholdMode string

const (
	RuleUniversal ThresholdRule = "universal"
	RuleHeurSure  ThresholdRule = "heursure"
	RuleMinimax   ThresholdRule = "minimax"

	ModeSoft ThresholdMode = "soft"
	ModeHard ThresholdMode = "hard"
)

// Conditioning defaults.
const (
	DefaultBandpassLowHz  = 1.5e6
	DefaultBandpassHighHz = 3.5e6
	DefaultBandpassOrder  = 6
	DefaultWavelet        = "sym6"
	DefaultDenoiseLevel   = 5
)

// BandpassConfig configures the zero-phase Butterworth band-pass stage.
type BandpassConfig struct {
	Enabled   bool
	LowCutHz  float64
	HighCutHz float64
	Order     int
}

// DenoiseConfig configures the wavelet shrinkage stage.
type DenoiseConfig struct {
	Enabled bool
	Wavelet string
	Level   int
	Rule    ThresholdRule
	Mode    ThresholdMode
}

// DefaultBandpassConfig returns the enabled 1.5 to 3.5 MHz, order 6 filter.
func DefaultBandpassConfig() BandpassConfig {
	return BandpassConfig{
		Enabled:   true,
		LowCutHz:  DefaultBandpassLowHz,
		HighCutHz: DefaultBandpassHighHz,
		Order:     DefaultBandpassOrder,
	}
}

// DefaultDenoiseConfig returns the enabled sym6, level 5, heursure, soft configuration.
func DefaultDenoiseConfig() DenoiseConfig {
	return DenoiseConfig{
		Enabled: true,
		Wavelet: DefaultWavelet,
		Level:   DefaultDenoiseLevel,
		Rule:    RuleHeurSure,
		Mode:    ModeSoft,
	}
}

// Normalize fills zero or unknown fields with documented defaults.
func (c BandpassConfig) Normalize() BandpassConfig {
	if c.Order <= 0 {
		c.Order = DefaultBandpassOrder
	}
	return c
}

// Normalize fills missing or unrecognised fields with documented defaults.
// The wavelet name is resolved by the conditioner, which knows its filter table.
func (c DenoiseConfig) Normalize() DenoiseConfig {
	if c.Wavelet == "" {
		c.Wavelet = DefaultWavelet
	}
	if c.Level < 1 {
		c.Level = DefaultDenoiseLevel
	}
	switch c.Rule {
	case RuleUniversal, RuleHeurSure, RuleMinimax:
	default:
		c.Rule = RuleHeurSure
	}
	switch c.Mode {
	case ModeSoft, ModeHard:
	default:
		c.Mode = ModeSoft
	}
	return c
}

// DenoiseEffect compares waveform SNR before and after denoising.
type DenoiseEffect struct {
	OriginalSNR   float64
	DenoisedSNR   float64
	ImprovementDB float64
	Original      Quality
	Denoised      Quality
}
