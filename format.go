package lzss32

import "math/bits"

// LZSS:32 format constants.
const (
	HeaderLen            = 8     // Packed-stream header: uint32 uncompressed length + uint32 dictionary length (LE).
	MinDictionaryLen     = 4     // Smallest legal dictionary (sliding window) size.
	MaxDictionaryLen     = 16384 // Largest legal dictionary size.
	DefaultDictionaryLen = 8192  // Dictionary size used when options are nil.
	MinMatch             = 3     // Shortest back-reference worth a 16-bit token over literals.

	wordLen = 4 // All three streams are packed into 32-bit words.
)

// dictParams holds the values both codec sides derive from the dictionary
// length. Offset and length share a 16-bit token: the low log2(d) bits carry
// offset-3, the remaining high bits carry length-3.
type dictParams struct {
	maxOffset   int    // Farthest back-reference distance: d + 2.
	maxMatch    int    // Longest encodable match: 65536/d + 2.
	lengthShift uint   // log2(d); position of the length field in a token.
	offsetMask  uint32 // d - 1; extracts offset-3 from a token.
	lengthMask  uint32 // (^offsetMask & 0xFFFF) >> lengthShift; extracts length-3.
}

// validDictionaryLen reports whether d is a power of two within [4, 16384].
func validDictionaryLen(d int) bool {
	return d >= MinDictionaryLen && d <= MaxDictionaryLen && d&(d-1) == 0
}

// newDictParams derives token-layout parameters from a valid dictionary length.
func newDictParams(d int) dictParams {
	offsetMask := uint32(d - 1) // #nosec G115 -- d validated to [4, 16384]
	shift := uint(bits.TrailingZeros32(uint32(d))) // #nosec G115

	return dictParams{
		maxOffset:   d + 2,
		maxMatch:    65536/d + 2,
		lengthShift: shift,
		offsetMask:  offsetMask,
		lengthMask:  (^offsetMask & 0xFFFF) >> shift,
	}
}

// MaxCompressedLen returns the worst-case packed size for n input bytes: the
// header, the all-literal packing (one flag word per 32 elements, one literal
// word per 4 bytes), plus two slack words. Per input byte a match is cheaper
// than the literals it replaces (2 token bytes for at least 3 input bytes),
// but a mixed stream can end with both a half-filled token word and a
// partly filled literal word; the slack words absorb that tail.
func MaxCompressedLen(n int) int {
	if n <= 0 {
		return HeaderLen
	}

	return HeaderLen + (n+31)/32*wordLen + (n+3)/4*wordLen + 2*wordLen
}
