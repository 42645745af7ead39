package matrix

import (
	"fmt"
	"strings"
)

// String renders the symbol for a terminal: a two-character-wide glyph per
// module surrounded by a four-module light quiet zone, followed by a
// version footer line.
func (m *Matrix) String() string {
	const quiet = 4
	var sb strings.Builder
	blankRow := strings.Repeat("  ", m.size+quiet*2)

	for i := 0; i < quiet; i++ {
		sb.WriteString(blankRow)
		sb.WriteByte('\n')
	}
	for y := 0; y < m.size; y++ {
		sb.WriteString(strings.Repeat("  ", quiet))
		for x := 0; x < m.size; x++ {
			if m.dark[y][x] {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString(strings.Repeat("  ", quiet))
		sb.WriteByte('\n')
	}
	for i := 0; i < quiet; i++ {
		sb.WriteString(blankRow)
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Version: %d\n", m.version)
	return sb.String()
}

// SVG renders the symbol as a scalable vector graphics document: one filled
// unit square per dark module on a white background, offset by border
// modules of quiet zone.
func (m *Matrix) SVG(border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("matrix: svg border must be non-negative, got %d", border)
	}
	total := m.size + border*2

	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", total)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.dark[y][x] {
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")
	return sb.String(), nil
}
