// Package matrix builds the dense module grid of a QR code symbol: function
// patterns, data placement along the zigzag scan, and data masking.
package matrix

import (
	"errors"
	"fmt"

	"github.com/doge0420/qrgo/internal/qrerr"
	"github.com/doge0420/qrgo/internal/tables"
)

var errWrongState = errors.New("matrix: operation invalid in current state")

type buildState int

const (
	empty buildState = iota
	functionsDrawn
	dataPlaced
	masked
)

// Matrix is the dense darkness/reserved grid of a QR code symbol, built up
// through the lifecycle Empty -> FunctionsDrawn -> DataPlaced -> Masked.
type Matrix struct {
	size    int
	version int
	ec      tables.ECLevel
	mask    tables.MaskPattern

	dark     [][]bool
	reserved [][]bool

	state buildState
}

// New allocates an empty size-by-size matrix for the given version, EC
// level, and mask pattern. It returns ErrInvalidVersion if version is
// outside [1, 40].
func New(version int, ec tables.ECLevel, mask tables.MaskPattern) (*Matrix, error) {
	if version < 1 || version > 40 {
		return nil, fmt.Errorf("version %d: %w", version, qrerr.ErrInvalidVersion)
	}
	size := 17 + 4*version
	m := &Matrix{
		size:     size,
		version:  version,
		ec:       ec,
		mask:     mask,
		dark:     make2D(size),
		reserved: make2D(size),
	}
	return m, nil
}

func make2D(size int) [][]bool {
	grid := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}
	return grid
}

// Size returns the symbol's side length in modules.
func (m *Matrix) Size() int { return m.size }

// Version returns the symbol's version.
func (m *Matrix) Version() int { return m.version }

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && x < m.size && y >= 0 && y < m.size
}

func (m *Matrix) isReserved(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.reserved[y][x]
}

// setReserved marks (x, y) as a function module with the given color.
// Coordinates outside the grid are silently ignored, matching how function
// pattern drawing routines run past the edge of small versions.
func (m *Matrix) setReserved(x, y int, dark bool) {
	if !m.inBounds(x, y) {
		return
	}
	m.dark[y][x] = dark
	m.reserved[y][x] = true
}

// setData sets a data module's color, refusing to overwrite a reserved
// (function pattern) cell. It reports whether the write happened.
func (m *Matrix) setData(x, y int, dark bool) bool {
	if !m.inBounds(x, y) || m.reserved[y][x] {
		return false
	}
	m.dark[y][x] = dark
	return true
}

// Dark reports whether the module at (x, y) is dark.
func (m *Matrix) Dark(x, y int) bool { return m.dark[y][x] }

// Reserved reports whether the module at (x, y) belongs to a function
// pattern rather than the data stream.
func (m *Matrix) Reserved(x, y int) bool { return m.reserved[y][x] }

// Grid returns a dense copy of the module colors, dark == true.
func (m *Matrix) Grid() [][]bool {
	out := make([][]bool, m.size)
	for y := range out {
		out[y] = append([]bool(nil), m.dark[y]...)
	}
	return out
}

// DrawFunctionPatterns stamps every fixed pattern (finders, separators,
// alignment, timing, dark module, format and version information) onto the
// grid. It must be called exactly once, before PlaceData.
func (m *Matrix) DrawFunctionPatterns() error {
	if m.state != empty {
		return fmt.Errorf("draw function patterns: %w", errWrongState)
	}
	drawFinderPatterns(m)
	drawSeparators(m)
	drawAlignmentPatterns(m)
	drawTimingPatterns(m)
	drawDarkModule(m)
	drawFormatInfo(m, m.ec, m.mask)
	drawVersionInfo(m, m.version)
	m.state = functionsDrawn
	return nil
}

// PlaceData writes codewords along the zigzag data scan, skipping every
// reserved function module. It must follow DrawFunctionPatterns.
func (m *Matrix) PlaceData(data []byte) error {
	if m.state != functionsDrawn {
		return fmt.Errorf("place data: %w", errWrongState)
	}
	placeData(m, data)
	m.state = dataPlaced
	return nil
}

// ApplyMask XORs the chosen mask pattern's predicate into every non-reserved
// module. It must follow PlaceData and may only be called once.
func (m *Matrix) ApplyMask() error {
	if m.state != dataPlaced {
		return fmt.Errorf("apply mask: %w", errWrongState)
	}
	applyMask(m, m.mask)
	m.state = masked
	return nil
}
