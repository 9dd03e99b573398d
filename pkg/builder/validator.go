package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/validator"
)

type Validator = validator.Validator

type ValidationLimits = validator.Limits

type ValidationWarning = types.ValidationWarning

func DefaultValidationLimits() ValidationLimits { return validator.DefaultLimits() }

func NewValidator(options ...types.Option[*validator.Validator]) *validator.Validator {
	return validator.NewValidator(options...)
}

func ValidatorWithLogger(loggers ...types.Logger) types.Option[*validator.Validator] {
	return validator.WithLogger(loggers...)
}

func ValidatorWithLimits(l ValidationLimits) types.Option[*validator.Validator] {
	return validator.WithLimits(l)
}

func ValidatorWithComponentMetadata(name string, id string) types.Option[*validator.Validator] {
	return validator.WithComponentMetadata(name, id)
}
