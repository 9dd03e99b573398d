package conditioner

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// WithLogger attaches loggers to the conditioner.
func WithLogger(logger ...types.Logger) types.Option[*Conditioner] {
	return func(c *Conditioner) {
		c.ConnectLogger(logger...)
	}
}

// WithBandpass replaces the band-pass configuration.
func WithBandpass(cfg types.BandpassConfig) types.Option[*Conditioner] {
	return func(c *Conditioner) {
		c.SetBandpass(cfg)
	}
}

// WithDenoise replaces the denoise configuration.
func WithDenoise(cfg types.DenoiseConfig) types.Option[*Conditioner] {
	return func(c *Conditioner) {
		c.SetDenoise(cfg)
	}
}

// WithComponentMetadata overrides the generated name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Conditioner] {
	return func(c *Conditioner) {
		c.SetComponentMetadata(name, id)
	}
}
