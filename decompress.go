package lzss32

import (
	"encoding/binary"
	"fmt"
)

// Decompress decompresses a packed stream into a new buffer sized from the
// header. Trailing bytes after the words the stream needs are ignored.
func Decompress(src []byte) ([]byte, error) {
	outLen, err := DecompressedLength(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, outLen)

	return DecompressInto(src, dst)
}

// DecompressInto decompresses a packed stream into caller-owned dst and
// returns dst truncated to the decoded length. Returns ErrOutputTooSmall when
// dst is shorter than the header's uncompressed length.
func DecompressInto(src, dst []byte) ([]byte, error) {
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressedLength reads the uncompressed length from the first header
// field without decoding, for callers sizing a destination buffer.
func DecompressedLength(src []byte) (int, error) {
	if len(src) < wordLen {
		return 0, fmt.Errorf("%w: %d bytes, need %d to read the length field", ErrCorruptStream, len(src), wordLen)
	}

	outLen := int(binary.LittleEndian.Uint32(src))
	if outLen < 0 { // only possible where int is 32 bits
		return 0, fmt.Errorf("%w: uncompressed length overflows int", ErrCorruptStream)
	}

	return outLen, nil
}

// decompressCore replays the packed streams into dst, consuming words in the
// exact order the compressor reserved them. Returns the number of bytes written.
func decompressCore(src, dst []byte) (int, error) {
	if len(src) < HeaderLen {
		return 0, fmt.Errorf("%w: %d bytes, need %d-byte header", ErrCorruptStream, len(src), HeaderLen)
	}

	outLen, err := DecompressedLength(src)
	if err != nil {
		return 0, err
	}

	d := int(binary.LittleEndian.Uint32(src[4:]))
	if !validDictionaryLen(d) {
		return 0, fmt.Errorf("%w: dictionary length %d in header", ErrCorruptStream, d)
	}

	if outLen > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrOutputTooSmall, outLen, len(dst))
	}

	p := newDictParams(d)
	r := wordReader{src: src, pos: HeaderLen}

	var (
		flagBits uint32 // Flag accumulator.
		flagMask uint32 // Current flag bit; 0 = accumulator empty.
		tokens   uint32 // Token accumulator, low token first.
		tokenCnt int
		lits     uint32 // Literal accumulator, low byte first.
		litCnt   int
	)

	pos := 0
	for pos < outLen {
		if flagMask == 0 {
			if flagBits, err = r.next(); err != nil {
				return 0, err
			}
			flagMask = 1
		}

		if flagBits&flagMask != 0 {
			if tokenCnt == 0 {
				if tokens, err = r.next(); err != nil {
					return 0, err
				}
				tokenCnt = 2
			}

			tok := tokens & 0xFFFF
			length := int((tok>>p.lengthShift)&p.lengthMask) + MinMatch
			offset := int(tok&p.offsetMask) + MinMatch

			if offset > pos {
				return 0, fmt.Errorf("%w: back-reference %d bytes behind position %d", ErrCorruptStream, offset, pos)
			}

			if length > outLen-pos {
				return 0, fmt.Errorf("%w: match of %d bytes with %d remaining", ErrCorruptStream, length, outLen-pos)
			}

			copyBackRef(dst, pos, offset, length)
			pos += length

			tokens >>= 16
			tokenCnt--
		} else {
			if litCnt == 0 {
				if lits, err = r.next(); err != nil {
					return 0, err
				}
				litCnt = 4
			}

			dst[pos] = byte(lits)
			pos++

			lits >>= 8
			litCnt--
		}

		flagMask <<= 1
	}

	return outLen, nil
}

// copyBackRef copies length bytes from dst[pos-offset:] to dst[pos:]. When
// offset < length the ranges overlap and each written byte must be visible to
// the following read (RLE-like), so the copy walks forward byte by byte; the
// built-in copy does not handle overlap where source precedes destination.
func copyBackRef(dst []byte, pos, offset, length int) {
	from := pos - offset

	if offset >= length {
		copy(dst[pos:pos+length], dst[from:from+length])
		return
	}

	for i := 0; i < length; i++ {
		dst[pos+i] = dst[from+i]
	}
}
