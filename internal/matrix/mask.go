package matrix

import "github.com/doge0420/qrgo/internal/tables"

func applyMask(m *Matrix, mask tables.MaskPattern) {
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.reserved[y][x] {
				continue
			}
			if maskPredicate(mask, x, y) {
				m.dark[y][x] = !m.dark[y][x]
			}
		}
	}
}

func maskPredicate(mask tables.MaskPattern, x, y int) bool {
	switch mask {
	case tables.Checkerboard:
		return (x+y)%2 == 0
	case tables.Horizontal:
		return y%2 == 0
	case tables.Vertical:
		return x%3 == 0
	case tables.Diagonal:
		return (x+y)%3 == 0
	case tables.LargeCheckerboard:
		return (x/2+y/3)%2 == 0
	case tables.Fields:
		return x*y%2+x*y%3 == 0
	case tables.Diamonds:
		return (x*y%2+x*y%3)%2 == 0
	case tables.Meadow:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		return false
	}
}
