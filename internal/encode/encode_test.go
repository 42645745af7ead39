package encode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doge0420/qrgo/internal/encode"
	"github.com/doge0420/qrgo/internal/qrerr"
	"github.com/doge0420/qrgo/internal/tables"
)

func TestEncodeNumericGroupsOfThree(t *testing.T) {
	got, err := encode.Encode("01234567", tables.Numeric)
	assert.NoError(t, err)
	// 012 -> 10 bits (0000001100), 345 -> 10 bits (0101011001), 67 -> 7 bits (1000011)
	assert.Equal(t, 10+10+7, len(got))
}

func TestEncodeNumericRejectsNonDigit(t *testing.T) {
	_, err := encode.Encode("12a", tables.Numeric)
	assert.ErrorIs(t, err, qrerr.ErrInvalidCharacter)
}

func TestEncodeAlphanumericPairHE(t *testing.T) {
	got, err := encode.Encode("HE", tables.Alphanumeric)
	assert.NoError(t, err)
	assert.Equal(t, 11, len(got))
	value := 0
	for _, b := range got {
		value <<= 1
		if b.Dark {
			value |= 1
		}
	}
	assert.Equal(t, 779, value)
}

func TestEncodeAlphanumericTrailingSingletonIsSixBits(t *testing.T) {
	got, err := encode.Encode("HEL", tables.Alphanumeric)
	assert.NoError(t, err)
	// HE -> 11 bits, L -> 6 bits
	assert.Equal(t, 17, len(got))
}

func TestEncodeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := encode.Encode("he", tables.Alphanumeric)
	assert.ErrorIs(t, err, qrerr.ErrInvalidCharacter)
}

func TestEncodeByteEachCharIsOneByte(t *testing.T) {
	got, err := encode.Encode("AB", tables.Byte)
	assert.NoError(t, err)
	assert.Equal(t, 16, len(got))
}

func TestEncodeByteRejectsBeyondLatin1(t *testing.T) {
	_, err := encode.Encode("日", tables.Byte)
	assert.ErrorIs(t, err, qrerr.ErrInvalidCharacter)
}

func TestEncodeKanjiIsUnsupported(t *testing.T) {
	_, err := encode.Encode("日", tables.Kanji)
	assert.True(t, errors.Is(err, qrerr.ErrUnsupported))
}
