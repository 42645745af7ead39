package qrgo_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doge0420/qrgo"
)

func TestGenerateHelloWorldAlphanumeric(t *testing.T) {
	m, err := qrgo.Generate("HELLO WORLD", qrgo.Alphanumeric, qrgo.Q, qrgo.Checkerboard)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Version())
	assert.Equal(t, 21, m.Size())
}

func TestGenerateByteMode(t *testing.T) {
	m, err := qrgo.Generate("https://example.com/", qrgo.Byte, qrgo.M, qrgo.Diagonal)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.Version(), 1)
}

func TestGenerateRejectsInvalidCharacterForMode(t *testing.T) {
	_, err := qrgo.Generate("lowercase not allowed", qrgo.Alphanumeric, qrgo.L, qrgo.Horizontal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrgo.ErrInvalidCharacter))
}

func TestGenerateRejectsKanji(t *testing.T) {
	_, err := qrgo.Generate("test", qrgo.Kanji, qrgo.L, qrgo.Horizontal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrgo.ErrUnsupported))
}

func TestGenerateRejectsOverCapacity(t *testing.T) {
	_, err := qrgo.Generate(strings.Repeat("1", 8000), qrgo.Numeric, qrgo.H, qrgo.Vertical)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrgo.ErrCapacityExceeded))
}

func TestGenerateStringRendersQuietZoneAndVersionFooter(t *testing.T) {
	m, err := qrgo.Generate("1", qrgo.Numeric, qrgo.L, qrgo.Fields)
	require.NoError(t, err)
	out := m.String()
	firstLine := strings.SplitN(out, "\n", 2)[0]
	assert.Equal(t, strings.Repeat("  ", 21+2*4), firstLine)
	assert.Contains(t, out, "Version: 1")
	assert.Contains(t, out, "██")
}

func TestGenerateSVGContainsPathAndViewBox(t *testing.T) {
	m, err := qrgo.Generate("1", qrgo.Numeric, qrgo.L, qrgo.Fields)
	require.NoError(t, err)
	svg, err := m.SVG(4)
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "viewBox")
	assert.Contains(t, svg, "<path")
}

func TestGenerateSVGRejectsNegativeBorder(t *testing.T) {
	m, err := qrgo.Generate("1", qrgo.Numeric, qrgo.L, qrgo.Fields)
	require.NoError(t, err)
	_, err = m.SVG(-1)
	assert.Error(t, err)
}
