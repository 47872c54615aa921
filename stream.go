package lzss32

import "encoding/binary"

// wordWriter hands out 32-bit slots in a destination buffer.
// Slots are reserved when a batch starts and patched when it completes, so
// every word lands at the position a sequential reader will need it.
type wordWriter struct {
	dst []byte // Destination buffer (never grown).
	pos int    // Next free byte offset in dst.
}

// reserve claims the next 32-bit slot and returns its byte offset.
func (w *wordWriter) reserve() (int, error) {
	if w.pos+wordLen > len(w.dst) {
		return 0, ErrOutputTooSmall
	}

	at := w.pos
	w.pos += wordLen

	return at, nil
}

// patch stores v into a previously reserved slot.
func (w *wordWriter) patch(at int, v uint32) {
	binary.LittleEndian.PutUint32(w.dst[at:], v)
}

// wordReader consumes 32-bit words from a packed stream.
type wordReader struct {
	src []byte // The packed stream.
	pos int    // The current position in the stream.
}

// next returns the following word, or ErrCorruptStream when src is exhausted.
func (r *wordReader) next() (uint32, error) {
	if r.pos+wordLen > len(r.src) {
		return 0, ErrCorruptStream
	}

	v := binary.LittleEndian.Uint32(r.src[r.pos:])
	r.pos += wordLen

	return v, nil
}

// accumulator batches equal-width stream elements into one 32-bit word.
// The word's output slot is reserved the moment the first element of a batch
// arrives, not when the batch completes; this ordering is what interleaves
// the flag, token and literal streams the way the decoder consumes them.
type accumulator struct {
	width uint   // Element width in bits: 1 (flags), 8 (literals) or 16 (tokens).
	word  uint32 // Batch in progress.
	count uint   // Elements accumulated in word.
	at    int    // Byte offset of the slot reserved for word.
}

// add appends one element, reserving a slot on the first element of a batch
// and patching the slot once 32 bits have accumulated.
func (a *accumulator) add(w *wordWriter, v uint32) error {
	if a.count == 0 {
		at, err := w.reserve()
		if err != nil {
			return err
		}

		a.at = at
		a.word = 0
	}

	a.word |= v << (a.count * a.width)
	a.count++

	if a.count*a.width == 32 {
		w.patch(a.at, a.word)
		a.count = 0
	}

	return nil
}

// flush patches a partially filled batch. Complete batches are already stored.
func (a *accumulator) flush(w *wordWriter) {
	if a.count > 0 {
		w.patch(a.at, a.word)
	}
}
