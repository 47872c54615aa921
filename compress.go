package lzss32

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Compress compresses src into a new buffer. Options nil means
// DefaultCompressOptions (8 KiB dictionary). An empty src yields a valid
// header-only stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	dst := make([]byte, MaxCompressedLen(len(src)))

	n, err := CompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src into caller-owned dst and returns the packed
// length. Size dst with MaxCompressedLen; on ErrOutputTooSmall retry the same
// call with a larger buffer, nothing meaningful has been written.
func CompressInto(src, dst []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	d := opts.DictionaryLen
	if !validDictionaryLen(d) {
		return 0, fmt.Errorf("%w: %d (power of two in [%d, %d])",
			ErrInvalidDictionaryLen, d, MinDictionaryLen, MaxDictionaryLen)
	}

	if uint64(len(src)) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(src))
	}

	if len(dst) < HeaderLen {
		return 0, fmt.Errorf("%w: need %d bytes for the header", ErrOutputTooSmall, HeaderLen)
	}

	binary.LittleEndian.PutUint32(dst[0:], uint32(len(src))) // #nosec G115 -- checked against MaxUint32
	binary.LittleEndian.PutUint32(dst[4:], uint32(d))        // #nosec G115 -- validated range

	p := newDictParams(d)
	w := wordWriter{dst: dst, pos: HeaderLen}

	flags := accumulator{width: 1}
	tokens := accumulator{width: 16}
	lits := accumulator{width: 8}

	cur := 0
	for cur < len(src) {
		bestLen, bestOff := 0, 0

		windowStart := cur - p.maxOffset
		if windowStart < 0 {
			windowStart = 0
		}

		// Scan the window oldest to newest, keeping the last candidate whose
		// match is at least as long as the incumbent, so equal-length matches
		// resolve to the smallest offset. The scan stops MinMatch bytes short
		// of the cursor: tokens store offset-3, so distances 1 and 2 are not
		// representable. The byte comparison may run past the cursor; a match
		// is allowed to overlap the bytes it will itself produce.
		for from := windowStart; from <= cur-MinMatch; from++ {
			n := 0
			for n < p.maxMatch && cur+n < len(src) && src[from+n] == src[cur+n] {
				n++
			}

			if n >= bestLen {
				bestLen = n
				bestOff = cur - from
			}
		}

		if bestLen >= MinMatch {
			if err := flags.add(&w, 1); err != nil {
				return 0, err
			}

			tok := uint32(bestLen-MinMatch)<<p.lengthShift | uint32(bestOff-MinMatch) // #nosec G115 -- bounded by dictParams
			if err := tokens.add(&w, tok); err != nil {
				return 0, err
			}

			cur += bestLen
		} else {
			if err := flags.add(&w, 0); err != nil {
				return 0, err
			}

			if err := lits.add(&w, uint32(src[cur])); err != nil {
				return 0, err
			}

			cur++
		}
	}

	flags.flush(&w)
	tokens.flush(&w)
	lits.flush(&w)

	return w.pos, nil
}
