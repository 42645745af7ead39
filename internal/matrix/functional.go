package matrix

import "github.com/doge0420/qrgo/internal/tables"

func drawFinderPatterns(m *Matrix) {
	corners := [3][2]int{{0, 0}, {m.size - 7, 0}, {0, m.size - 7}}
	for _, c := range corners {
		for dy := 0; dy < 7; dy++ {
			for dx := 0; dx < 7; dx++ {
				m.setReserved(c[0]+dx, c[1]+dy, tables.FinderPattern[dy][dx])
			}
		}
	}
}

func drawSeparators(m *Matrix) {
	size := m.size
	top := [3][2]int{{7, 0}, {size - 8, 0}, {7, size - 8}}
	for _, c := range top {
		for dy := 0; dy < 8; dy++ {
			m.setReserved(c[0], c[1]+dy, false)
		}
	}

	right := [3][2]int{{0, 7}, {size - 7, 7}, {0, size - 8}}
	for _, c := range right {
		for dx := 0; dx < 7; dx++ {
			m.setReserved(c[0]+dx, c[1], false)
		}
	}
}

func drawAlignmentPatterns(m *Matrix) {
	coords := tables.AlignmentPositions(m.version)
	for _, cx := range coords {
		for _, cy := range coords {
			drawAlignmentPattern(m, cx, cy)
		}
	}
}

func drawAlignmentPattern(m *Matrix, cx, cy int) {
	if m.isReserved(cx, cy) {
		return
	}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.setReserved(cx+dx, cy+dy, tables.AlignmentPattern[dy+2][dx+2])
		}
	}
}

func drawTimingPatterns(m *Matrix) {
	for i := 8; i < m.size-8; i++ {
		if !m.isReserved(i, 6) {
			m.setReserved(i, 6, i%2 == 0)
		}
		if !m.isReserved(6, i) {
			m.setReserved(6, i, i%2 == 0)
		}
	}
}

func drawDarkModule(m *Matrix) {
	m.setReserved(8, 4*m.version+9, true)
}

// drawFormatInfo places two copies of the 15-bit format information word.
// The scan order below is the one reference QR implementations use (it
// does not match either draft found in the symbol's design history, which
// disagree with each other); ISO 18004 Annex C is the tie-breaker.
func drawFormatInfo(m *Matrix, ec tables.ECLevel, mask tables.MaskPattern) {
	value := tables.FormatBits[int(ec)*8+int(mask)]
	bit := func(i int) bool { return (value>>uint(i))&1 != 0 }

	for i := 0; i <= 5; i++ {
		m.setReserved(8, i, bit(i))
	}
	m.setReserved(8, 7, bit(6))
	m.setReserved(8, 8, bit(7))
	m.setReserved(7, 8, bit(8))
	for i := 9; i < 15; i++ {
		m.setReserved(14-i, 8, bit(i))
	}

	for i := 0; i < 8; i++ {
		m.setReserved(m.size-1-i, 8, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.setReserved(8, m.size-15+i, bit(i))
	}
}

func drawVersionInfo(m *Matrix, version int) {
	if version < 7 {
		return
	}
	value := tables.VersionBits[version-7]
	for i := 0; i < 18; i++ {
		b := (value>>uint(i))&1 != 0
		a := m.size - 11 + i%3
		bb := i / 3
		m.setReserved(a, bb, b)
		m.setReserved(bb, a, b)
	}
}
