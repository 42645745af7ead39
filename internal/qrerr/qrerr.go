// Package qrerr defines the sentinel errors shared across the encoding
// pipeline so that internal packages and the root qrgo package can both
// produce and recognize the same error values without an import cycle.
package qrerr

import "errors"

var (
	// ErrInvalidCharacter is returned when input text contains a character
	// the selected mode cannot represent.
	ErrInvalidCharacter = errors.New("invalid character for mode")

	// ErrUnsupported is returned for a requested mode this generator does
	// not implement (Kanji).
	ErrUnsupported = errors.New("unsupported mode")

	// ErrCapacityExceeded is returned when no version up to 40 has enough
	// capacity for the given text and error correction level.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidVersion is returned when a version outside [1, 40] is
	// requested directly from the matrix builder.
	ErrInvalidVersion = errors.New("invalid version")
)
