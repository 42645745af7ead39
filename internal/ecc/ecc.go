// Package ecc computes Reed-Solomon error correction codewords over GF(256)
// and interleaves data and error correction blocks the way ISO 18004
// requires before they are placed into the matrix.
package ecc

import "github.com/doge0420/qrgo/internal/tables"

// ComputeBlock returns the eccLen error correction codewords for a single
// data block, computed as the remainder of dividing the data polynomial
// (shifted up by eccLen degrees) by the degree-eccLen generator polynomial.
func ComputeBlock(data []byte, eccLen int) []byte {
	gen := tables.GeneratorPolynomialLog(eccLen)
	buf := make([]byte, len(data)+eccLen)
	copy(buf, data)
	for i := range data {
		coef := buf[i]
		if coef == 0 {
			continue
		}
		l := tables.Log(coef)
		for j, g := range gen {
			buf[i+1+j] ^= tables.Exp((g + l) % 255)
		}
	}
	return buf[len(data):]
}

// Interleave reads one byte at a time from each block in turn, the way a
// QR code reader consumes a symbol's data area, until every block is
// exhausted. Blocks need not be the same length.
func Interleave(blocks [][]byte) []byte {
	maxLen := 0
	total := 0
	for _, b := range blocks {
		if len(b) > maxLen {
			maxLen = len(b)
		}
		total += len(b)
	}
	out := make([]byte, 0, total)
	for i := 0; i < maxLen; i++ {
		for _, b := range blocks {
			if i < len(b) {
				out = append(out, b[i])
			}
		}
	}
	return out
}
