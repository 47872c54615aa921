package lzss32

// CompressOptions configures compression.
type CompressOptions struct {
	// DictionaryLen is the sliding-window size. Must be a power of two within
	// [MinDictionaryLen, MaxDictionaryLen]. Larger dictionaries reach farther
	// back but shorten the longest encodable match (offset and length share a
	// 16-bit token).
	DictionaryLen int
}

// DefaultCompressOptions returns options with the default 8 KiB dictionary.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		DictionaryLen: DefaultDictionaryLen,
	}
}
