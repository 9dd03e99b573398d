package codec

import "errors"

var (
	// ErrUnknownCompression is returned for compression names or frame codes this package does not know.
	ErrUnknownCompression = errors.New("codec: unknown compression")
	// ErrBadMagic is returned when a stream does not start with a waveform frame header.
	ErrBadMagic = errors.New("codec: not a waveform frame")
	// ErrUnsupportedVersion is returned for frames written by a newer format revision.
	ErrUnsupportedVersion = errors.New("codec: unsupported frame version")
	// ErrCorruptFrame is returned when a frame body is inconsistent with its header.
	ErrCorruptFrame = errors.New("codec: corrupt frame")
)
