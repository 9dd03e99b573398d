// Package codec serialises waveforms into compact binary frames and persists
// them in a directory-backed waveform store.
package codec

import (
	"io"
)

// Decoder reads one value of type T from a stream.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder writes one value of type T to a stream.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}
