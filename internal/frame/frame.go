// Package frame selects a symbol version, assembles the mode indicator,
// character count indicator, and encoded data into a padded bit stream, and
// splits and protects it into interleaved, ECC-coded codewords.
package frame

import (
	"fmt"

	"github.com/doge0420/qrgo/internal/bits"
	"github.com/doge0420/qrgo/internal/ecc"
	"github.com/doge0420/qrgo/internal/encode"
	"github.com/doge0420/qrgo/internal/qrerr"
	"github.com/doge0420/qrgo/internal/tables"
)

// Result is the fully assembled, block-interleaved codeword stream ready
// for matrix placement, together with the version the framer selected.
type Result struct {
	Version   int
	Codewords []byte
}

// Frame validates and encodes text in the given mode, then picks the
// smallest version that fits, pads to that version's capacity, splits the
// result into blocks, computes each block's Reed-Solomon remainder, and
// interleaves the data and error correction streams. Encoding runs before
// version selection so an invalid character is always reported as
// ErrInvalidCharacter, even when the text is also too long for version 40.
func Frame(text string, mode tables.Mode, ec tables.ECLevel) (*Result, error) {
	if mode == tables.Kanji {
		return nil, fmt.Errorf("kanji mode: %w", qrerr.ErrUnsupported)
	}

	length := len([]rune(text))

	data, err := encode.Encode(text, mode)
	if err != nil {
		return nil, err
	}

	version, err := selectVersion(mode, ec, length)
	if err != nil {
		return nil, err
	}

	var bb bits.Buffer
	bb.AppendBits(mode.Indicator(), 4)
	bb.AppendBits(uint32(length), tables.CharCountBits(mode, version))
	bb = append(bb, data...)

	capacityBytes := dataCapacityBytes(version, ec)
	capacityBits := capacityBytes * 8
	if len(bb) > capacityBits {
		return nil, fmt.Errorf("data length = %d bits, capacity = %d bits: %w", len(bb), capacityBits, qrerr.ErrCapacityExceeded)
	}

	bb.AppendBits(0, min(4, capacityBits-len(bb)))
	if rem := len(bb) % 8; rem != 0 {
		bb.AppendBits(0, 8-rem)
	}
	for padByte := uint32(0xEC); len(bb) < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.AppendBits(padByte, 8)
	}

	dataCodewords := bits.ToBytes(bb)

	blocks := partition(dataCodewords, version, ec)
	eccLen := tables.ECBytesPerBlock(version, ec)

	dataBlocks := make([][]byte, len(blocks))
	eccBlocks := make([][]byte, len(blocks))
	for i, block := range blocks {
		dataBlocks[i] = block
		eccBlocks[i] = ecc.ComputeBlock(block, eccLen)
	}

	codewords := append(ecc.Interleave(dataBlocks), ecc.Interleave(eccBlocks)...)

	return &Result{Version: version, Codewords: codewords}, nil
}

func selectVersion(mode tables.Mode, ec tables.ECLevel, length int) (int, error) {
	for v := 1; v <= 40; v++ {
		if length <= tables.Capacity(mode, v, ec) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("input length = %d characters exceeds version 40 capacity: %w", length, qrerr.ErrCapacityExceeded)
}

func dataCapacityBytes(version int, ec tables.ECLevel) int {
	b1size, b1count, b2size, b2count := tables.DataBytesPerBlock(version, ec)
	return b1size*b1count + b2size*b2count
}

func partition(data []byte, version int, ec tables.ECLevel) [][]byte {
	b1size, b1count, b2size, b2count := tables.DataBytesPerBlock(version, ec)
	blocks := make([][]byte, 0, b1count+b2count)
	offset := 0
	for i := 0; i < b1count; i++ {
		blocks = append(blocks, data[offset:offset+b1size])
		offset += b1size
	}
	for i := 0; i < b2count; i++ {
		blocks = append(blocks, data[offset:offset+b2size])
		offset += b2size
	}
	return blocks
}
