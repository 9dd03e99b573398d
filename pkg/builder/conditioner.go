package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/conditioner"
	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

type Waveform = types.Waveform

type BandpassConfig = types.BandpassConfig

type DenoiseConfig = types.DenoiseConfig

type DenoiseEffect = types.DenoiseEffect

type ThresholdRule = types.ThresholdRule

type ThresholdMode = types.ThresholdMode

const (
	RuleUniversal = types.RuleUniversal
	RuleHeurSure  = types.RuleHeurSure
	RuleMinimax   = types.RuleMinimax
	ModeSoft      = types.ModeSoft
	ModeHard      = types.ModeHard
)

type Conditioner = conditioner.Conditioner

type Extractor = tof.Extractor

type ToFResult = types.ToFResult

type Quality = types.Quality

// DefaultBandpassConfig returns the 1.5 to 3.5 MHz, order 6 filter.
func DefaultBandpassConfig() BandpassConfig { return types.DefaultBandpassConfig() }

// DefaultDenoiseConfig returns sym6, level 5, heursure, soft.
func DefaultDenoiseConfig() DenoiseConfig { return types.DefaultDenoiseConfig() }

// Wavelets lists the supported wavelet names.
func Wavelets() []string { return conditioner.Wavelets() }

func NewConditioner(options ...types.Option[*conditioner.Conditioner]) *conditioner.Conditioner {
	return conditioner.NewConditioner(options...)
}

func ConditionerWithLogger(loggers ...types.Logger) types.Option[*conditioner.Conditioner] {
	return conditioner.WithLogger(loggers...)
}

func ConditionerWithBandpass(cfg BandpassConfig) types.Option[*conditioner.Conditioner] {
	return conditioner.WithBandpass(cfg)
}

func ConditionerWithDenoise(cfg DenoiseConfig) types.Option[*conditioner.Conditioner] {
	return conditioner.WithDenoise(cfg)
}

func ConditionerWithComponentMetadata(name string, id string) types.Option[*conditioner.Conditioner] {
	return conditioner.WithComponentMetadata(name, id)
}

func NewExtractor(options ...types.Option[*tof.Extractor]) *tof.Extractor {
	return tof.NewExtractor(options...)
}

func ExtractorWithLogger(loggers ...types.Logger) types.Option[*tof.Extractor] {
	return tof.WithLogger(loggers...)
}

func ExtractorWithComponentMetadata(name string, id string) types.Option[*tof.Extractor] {
	return tof.WithComponentMetadata(name, id)
}

// SNR estimates a waveform's signal-to-noise ratio in dB.
func SNR(voltages []float64) float64 { return tof.SNR(voltages) }

// EvaluateQuality scores a conditioned waveform.
func EvaluateQuality(voltages []float64) Quality { return tof.EvaluateQuality(voltages) }
