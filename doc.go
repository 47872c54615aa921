/*
Package lzss32 implements LZSS:32 compression and decompression over in-memory buffers.

Format: 8-byte header (uint32 uncompressed length, uint32 dictionary length; little-endian),
then 32-bit words carrying three logical streams: flag bits (1 = back-reference token,
0 = literal byte), 16-bit (length, offset) tokens packed two per word low token first, and
literal bytes packed four per word low byte first. Each stream reserves its next output word
the moment the first element of a batch is produced, so the words interleave in exactly the
order a sequential decoder consumes them; there is no stream-offset table and no checksum.
Token layout for dictionary length d: low log2(d) bits hold offset-3, the remaining high
bits hold length-3. Offsets reach d+2 bytes back, matches span 3 to 65536/d+2 bytes and may
overlap the bytes they produce (runs decode with a byte-ordered self-referential copy).

Use Compress(src, opts) with nil for the default 8 KiB dictionary.
Use CompressInto(src, dst, opts) to pack into caller-owned memory sized with MaxCompressedLen.
Use Decompress(src) to decode into a new buffer sized from the header.
Use DecompressInto(src, dst) to decode into caller-owned memory.
Use DecompressedLength(src) to size a destination buffer without decoding.

# Examples

Round-trip compress and decompress:

	enc, err := lzss32.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss32.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Compress with a 1 KiB window (longer matches, shorter reach):

	enc, err := lzss32.Compress(data, &lzss32.CompressOptions{DictionaryLen: 1024})

Decode into reused memory:

	n, err := lzss32.DecompressedLength(enc)
	if err != nil {
		return err
	}
	if n > len(scratch) {
		scratch = make([]byte, n)
	}
	out, err := lzss32.DecompressInto(enc, scratch)
*/
package lzss32
