package tables

// eccCodeWordsPerBlock and numErrorCorrectionBlocks are ISO 18004 Annex T's
// per-(EC level, version) block layout constants, row ordered L, M, Q, H;
// column 0 is unused padding so a version can index directly.
var (
	eccCodeWordsPerBlock = [4][41]int{
		L: {-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		M: {-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		Q: {-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		H: {-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	}

	numErrorCorrectionBlocks = [4][41]int{
		L: {-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		M: {-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		Q: {-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		H: {-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

	numRawDataModules [41]int
)

func init() {
	// numRawDataModules is the number of data-carrying bits available in a
	// symbol of each version once every function pattern is excluded. It
	// includes the trailing remainder bits, so it need not be a multiple of
	// 8; the result lies in [208, 29648].
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		numRawDataModules[v] = result
	}
}

// ECBytesPerBlock returns the number of Reed-Solomon error correction
// codewords attached to each block at the given version and EC level.
func ECBytesPerBlock(version int, ec ECLevel) int {
	return eccCodeWordsPerBlock[ec][version]
}

// DataBytesPerBlock describes a symbol's block partitioning at the given
// version and EC level: b1count blocks of b1size data bytes, followed by
// b2count blocks of b2size data bytes (b2count may be zero, in which case
// every block is the same size).
func DataBytesPerBlock(version int, ec ECLevel) (b1size, b1count, b2size, b2count int) {
	numBlocks := numErrorCorrectionBlocks[ec][version]
	eccLen := eccCodeWordsPerBlock[ec][version]
	rawCodewords := numRawDataModules[version] / 8

	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	b1size = shortBlockLen - eccLen
	b1count = numShortBlocks
	b2count = numBlocks - numShortBlocks
	if b2count > 0 {
		b2size = b1size + 1
	}
	return b1size, b1count, b2size, b2count
}
