// Package qrgo generates QR Code symbols conforming to ISO/IEC 18004,
// versions 1-40: a pure data encoding pipeline from text to a dense module
// matrix, with no decoding or raster rendering.
package qrgo

import (
	"fmt"

	"github.com/doge0420/qrgo/internal/frame"
	"github.com/doge0420/qrgo/internal/matrix"
	"github.com/doge0420/qrgo/internal/qrerr"
	"github.com/doge0420/qrgo/internal/tables"
)

// Sentinel errors a caller can compare against with errors.Is.
var (
	ErrInvalidCharacter = qrerr.ErrInvalidCharacter
	ErrUnsupported      = qrerr.ErrUnsupported
	ErrCapacityExceeded = qrerr.ErrCapacityExceeded
	ErrInvalidVersion   = qrerr.ErrInvalidVersion
)

// EncodingMode selects which of the four ISO 18004 encoding modes is used
// for the input text.
type EncodingMode = tables.Mode

const (
	Numeric      = tables.Numeric
	Alphanumeric = tables.Alphanumeric
	Byte         = tables.Byte
	Kanji        = tables.Kanji
)

// ErrorCorrectionLevel selects the symbol's Reed-Solomon redundancy budget.
type ErrorCorrectionLevel = tables.ECLevel

const (
	L = tables.L
	M = tables.M
	Q = tables.Q
	H = tables.H
)

// MaskPattern selects which of the eight ISO 18004 XOR predicates is
// applied over the data region.
type MaskPattern = tables.MaskPattern

const (
	Checkerboard      = tables.Checkerboard
	Horizontal        = tables.Horizontal
	Vertical          = tables.Vertical
	Diagonal          = tables.Diagonal
	LargeCheckerboard = tables.LargeCheckerboard
	Fields            = tables.Fields
	Diamonds          = tables.Diamonds
	Meadow            = tables.Meadow
)

// Matrix is the built, masked module grid of a QR code symbol.
type Matrix = matrix.Matrix

// Generate runs the full pipeline — encode, frame, place, mask — and
// returns the finished symbol. It selects the smallest version (1-40) that
// can hold text at the requested mode and error correction level.
//
// Generate returns ErrInvalidCharacter if text contains a character the
// mode cannot represent, ErrUnsupported if mode is Kanji, or
// ErrCapacityExceeded if text does not fit in version 40 at the requested
// level.
func Generate(text string, mode EncodingMode, ec ErrorCorrectionLevel, mask MaskPattern) (*Matrix, error) {
	result, err := frame.Frame(text, mode, ec)
	if err != nil {
		return nil, fmt.Errorf("qrgo: %w", err)
	}

	m, err := matrix.New(result.Version, ec, mask)
	if err != nil {
		return nil, fmt.Errorf("qrgo: %w", err)
	}
	if err := m.DrawFunctionPatterns(); err != nil {
		return nil, fmt.Errorf("qrgo: %w", err)
	}
	if err := m.PlaceData(result.Codewords); err != nil {
		return nil, fmt.Errorf("qrgo: %w", err)
	}
	if err := m.ApplyMask(); err != nil {
		return nil, fmt.Errorf("qrgo: %w", err)
	}
	return m, nil
}
