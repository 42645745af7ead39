// Package encode turns input text into the mode-specific data bit stream
// that follows a segment's mode indicator and character count indicator.
package encode

import (
	"fmt"
	"strings"

	"github.com/doge0420/qrgo/internal/bits"
	"github.com/doge0420/qrgo/internal/qrerr"
	"github.com/doge0420/qrgo/internal/tables"
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Encode converts text into its mode-specific data bit stream. It does not
// include the mode indicator or character count indicator; the framer
// assembles those around the returned bits.
func Encode(text string, mode tables.Mode) ([]bits.Bit, error) {
	switch mode {
	case tables.Numeric:
		return encodeNumeric(text)
	case tables.Alphanumeric:
		return encodeAlphanumeric(text)
	case tables.Byte:
		return encodeByte(text)
	case tables.Kanji:
		return nil, fmt.Errorf("kanji mode: %w", qrerr.ErrUnsupported)
	default:
		return nil, fmt.Errorf("mode %v: %w", mode, qrerr.ErrUnsupported)
	}
}

func encodeNumeric(text string) ([]bits.Bit, error) {
	runes := []rune(text)
	var out bits.Buffer
	for i := 0; i < len(runes); {
		n := min(3, len(runes)-i)
		value := 0
		for _, r := range runes[i : i+n] {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("character %q is not a digit: %w", r, qrerr.ErrInvalidCharacter)
			}
			value = value*10 + int(r-'0')
		}
		width := map[int]int{1: 4, 2: 7, 3: 10}[n]
		out.AppendBits(uint32(value), width)
		i += n
	}
	return []bits.Bit(out), nil
}

func encodeAlphanumeric(text string) ([]bits.Bit, error) {
	runes := []rune(text)
	var out bits.Buffer
	i := 0
	for ; i+1 < len(runes); i += 2 {
		v1, err := alphaValue(runes[i])
		if err != nil {
			return nil, err
		}
		v2, err := alphaValue(runes[i+1])
		if err != nil {
			return nil, err
		}
		out.AppendBits(uint32(v1*45+v2), 11)
	}
	if i < len(runes) {
		v, err := alphaValue(runes[i])
		if err != nil {
			return nil, err
		}
		out.AppendBits(uint32(v), 6)
	}
	return []bits.Bit(out), nil
}

func alphaValue(r rune) (int, error) {
	if r > 0xFF {
		return 0, fmt.Errorf("character %q is not in the alphanumeric charset: %w", r, qrerr.ErrInvalidCharacter)
	}
	idx := strings.IndexRune(alphanumericCharset, r)
	if idx < 0 {
		return 0, fmt.Errorf("character %q is not in the alphanumeric charset: %w", r, qrerr.ErrInvalidCharacter)
	}
	return idx, nil
}

func encodeByte(text string) ([]bits.Bit, error) {
	var out bits.Buffer
	for _, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("character %q exceeds ISO-8859-1: %w", r, qrerr.ErrInvalidCharacter)
		}
		out.AppendBits(uint32(r), 8)
	}
	return []bits.Bit(out), nil
}
