package validator

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// WithLogger attaches loggers.
func WithLogger(logger ...types.Logger) types.Option[*Validator] {
	return func(v *Validator) {
		v.ConnectLogger(logger...)
	}
}

// WithLimits overrides DefaultLimits.
func WithLimits(l Limits) types.Option[*Validator] {
	return func(v *Validator) {
		v.limits = l
	}
}

// WithComponentMetadata overrides the generated name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Validator] {
	return func(v *Validator) {
		v.componentMetadata.Name = name
		v.componentMetadata.ID = id
	}
}
