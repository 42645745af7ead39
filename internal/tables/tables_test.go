package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doge0420/qrgo/internal/tables"
)

func TestExpLogAreInverses(t *testing.T) {
	for i := 0; i < 255; i++ {
		v := tables.Exp(i)
		if v == 0 {
			continue
		}
		assert.Equal(t, i, tables.Log(v))
	}
}

func TestExpWrapsModulo255(t *testing.T) {
	assert.Equal(t, tables.Exp(0), tables.Exp(255))
}

func TestGeneratorPolynomialLogLength(t *testing.T) {
	for _, degree := range []int{7, 10, 13, 15, 16, 17, 18, 20, 22, 24, 26, 28, 30} {
		assert.Len(t, tables.GeneratorPolynomialLog(degree), degree)
	}
}

func TestCapacityIndexesBoundaries(t *testing.T) {
	// Version 1, L (numeric): 41 per Annex T.
	assert.Equal(t, 41, tables.Capacity(tables.Numeric, 1, tables.L))
	// Version 40, L (alphanumeric): 4296, the documented upper bound.
	assert.Equal(t, 4296, tables.Capacity(tables.Alphanumeric, 40, tables.L))
}

func TestCharCountBitsBands(t *testing.T) {
	assert.Equal(t, 10, tables.CharCountBits(tables.Numeric, 1))
	assert.Equal(t, 12, tables.CharCountBits(tables.Numeric, 10))
	assert.Equal(t, 14, tables.CharCountBits(tables.Numeric, 27))
	assert.Equal(t, 9, tables.CharCountBits(tables.Alphanumeric, 9))
	assert.Equal(t, 6, tables.CharCountBits(tables.Byte, 1)-2)
}

func TestDataBytesPerBlockVersion1L(t *testing.T) {
	b1size, b1count, b2size, b2count := tables.DataBytesPerBlock(1, tables.L)
	assert.Equal(t, 19, b1size)
	assert.Equal(t, 1, b1count)
	assert.Equal(t, 0, b2size)
	assert.Equal(t, 0, b2count)
}

func TestDataBytesPerBlockVersion5Q(t *testing.T) {
	// Version 5-Q has two short blocks of 15 and two long blocks of 16.
	b1size, b1count, b2size, b2count := tables.DataBytesPerBlock(5, tables.Q)
	assert.Equal(t, 15, b1size)
	assert.Equal(t, 2, b1count)
	assert.Equal(t, 16, b2size)
	assert.Equal(t, 2, b2count)
}

func TestAlignmentPositionsVersion1Empty(t *testing.T) {
	assert.Empty(t, tables.AlignmentPositions(1))
}

func TestAlignmentPositionsVersion2(t *testing.T) {
	assert.Equal(t, []int{6, 18}, tables.AlignmentPositions(2))
}

func TestFormatAndVersionBitsTableSizes(t *testing.T) {
	assert.Len(t, tables.FormatBits, 32)
	assert.Len(t, tables.VersionBits, 34)
}
