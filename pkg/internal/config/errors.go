package config

import "errors"

var (
	// ErrUnknownLayout is returned for a layout type other than grid, polar, adaptive or custom.
	ErrUnknownLayout = errors.New("config: unknown layout type")
	// ErrInvalidHole is returned when a hole is neither a rectangle nor a circle.
	ErrInvalidHole = errors.New("config: holes must be rectangles or circles")
)
