package lzss32

import (
	"bytes"
	"testing"
)

// FuzzRoundTrip checks that any input survives compress/decompress unchanged
// across small and large dictionaries.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte("Hello, World!"))
	f.Add([]byte("abcdeabc")) // mixed tail: partial token and literal words
	f.Add(bytes.Repeat([]byte{'A'}, 40))
	f.Add(bytes.Repeat([]byte("ABCD"), 10))
	f.Add(bytes.Repeat([]byte("The quick brown fox. "), 10))

	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}
	f.Add(seq)

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 4096 {
			// Skip very large inputs for speed
			return
		}

		for _, d := range []int{16, 1024} {
			enc, err := Compress(input, &CompressOptions{DictionaryLen: d})
			if err != nil {
				t.Fatalf("Compress(dict=%d) failed: %v", d, err)
			}
			if len(enc) > MaxCompressedLen(len(input)) {
				t.Fatalf("dict=%d: packed %d bytes exceeds bound %d", d, len(enc), MaxCompressedLen(len(input)))
			}

			dec, err := Decompress(enc)
			if err != nil {
				t.Fatalf("Decompress(dict=%d) failed: %v", d, err)
			}
			if !bytes.Equal(dec, input) {
				t.Fatalf("dict=%d: round-trip mismatch: got=%d want=%d", d, len(dec), len(input))
			}
		}
	})
}

// FuzzDecompress feeds arbitrary bytes to the decoder: it must either decode
// or fail with a typed error, never read or write out of bounds.
func FuzzDecompress(f *testing.F) {
	valid, err := Compress(bytes.Repeat([]byte("seed data "), 16), nil)
	if err != nil {
		f.Fatal(err)
	}
	f.Add(valid)
	f.Add([]byte{})
	f.Add(valid[:HeaderLen])
	f.Add(valid[:len(valid)-3])

	f.Fuzz(func(t *testing.T, src []byte) {
		if n, err := DecompressedLength(src); err == nil && n > 1<<20 {
			// Don't let fuzzed headers demand huge allocations
			return
		}

		out, err := Decompress(src)
		if err != nil {
			return
		}

		n, err := DecompressedLength(src)
		if err != nil {
			t.Fatalf("decoded a stream whose length field is unreadable: %v", err)
		}
		if len(out) != n {
			t.Fatalf("decoded %d bytes, header declares %d", len(out), n)
		}
	})
}
