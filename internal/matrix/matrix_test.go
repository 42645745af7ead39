package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doge0420/qrgo/internal/qrerr"
	"github.com/doge0420/qrgo/internal/tables"
)

func TestNewRejectsOutOfRangeVersion(t *testing.T) {
	_, err := New(0, tables.L, tables.Checkerboard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrerr.ErrInvalidVersion))

	_, err = New(41, tables.L, tables.Checkerboard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrerr.ErrInvalidVersion))
}

func TestNewSizeFollowsVersionFormula(t *testing.T) {
	m, err := New(1, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Size())

	m, err = New(40, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	assert.Equal(t, 177, m.Size())
}

func TestLifecycleRejectsOutOfOrderCalls(t *testing.T) {
	m, err := New(1, tables.L, tables.Checkerboard)
	require.NoError(t, err)

	err = m.PlaceData(make([]byte, 19))
	assert.Error(t, err)

	err = m.ApplyMask()
	assert.Error(t, err)

	require.NoError(t, m.DrawFunctionPatterns())
	err = m.DrawFunctionPatterns()
	assert.Error(t, err)

	require.NoError(t, m.PlaceData(make([]byte, 19)))
	err = m.PlaceData(make([]byte, 19))
	assert.Error(t, err)

	require.NoError(t, m.ApplyMask())
	err = m.ApplyMask()
	assert.Error(t, err)
}

func TestDrawFunctionPatternsReservesFinderCorners(t *testing.T) {
	m, err := New(1, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	require.NoError(t, m.DrawFunctionPatterns())

	assert.True(t, m.Reserved(0, 0))
	assert.True(t, m.Dark(0, 0))
	assert.True(t, m.Reserved(m.Size()-7, 0))
	assert.True(t, m.Reserved(0, m.Size()-7))
	assert.False(t, m.Reserved(m.Size()-1, m.Size()-1))
}

func TestDrawFunctionPatternsSkipsAlignmentForVersion1(t *testing.T) {
	m, err := New(1, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	require.NoError(t, m.DrawFunctionPatterns())
	assert.Empty(t, tables.AlignmentPositions(1))
}

func TestDrawFunctionPatternsPlacesAlignmentForVersion2(t *testing.T) {
	m, err := New(2, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	require.NoError(t, m.DrawFunctionPatterns())
	assert.True(t, m.Reserved(18, 18))
	assert.True(t, m.Dark(18, 18))
}

func TestDrawFunctionPatternsSetsDarkModule(t *testing.T) {
	m, err := New(1, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	require.NoError(t, m.DrawFunctionPatterns())
	assert.True(t, m.Dark(8, 4*1+9))
}

func TestDrawFunctionPatternsSkipsVersionInfoBelowVersion7(t *testing.T) {
	m, err := New(6, tables.L, tables.Checkerboard)
	require.NoError(t, err)
	require.NoError(t, m.DrawFunctionPatterns())
	assert.False(t, m.Reserved(m.Size()-11, 0))
}

func TestMaskPredicateLargeCheckerboardMatchesFloorDivFormula(t *testing.T) {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := (x/2+y/3)%2 == 0
			assert.Equal(t, want, maskPredicate(tables.LargeCheckerboard, x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestFullLifecycleProducesMaskedGrid(t *testing.T) {
	m, err := New(1, tables.Q, tables.Diagonal)
	require.NoError(t, err)
	require.NoError(t, m.DrawFunctionPatterns())

	data := make([]byte, 26)
	for i := range data {
		data[i] = byte(i)
	}
	require.NoError(t, m.PlaceData(data))
	require.NoError(t, m.ApplyMask())

	grid := m.Grid()
	assert.Len(t, grid, 21)
	for _, row := range grid {
		assert.Len(t, row, 21)
	}
}
