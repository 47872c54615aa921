package lzss32

import "testing"

func TestDictParamsDerivation(t *testing.T) {
	cases := []struct {
		dict        int
		maxOffset   int
		maxMatch    int
		lengthShift uint
		offsetMask  uint32
		lengthMask  uint32
	}{
		{dict: 4, maxOffset: 6, maxMatch: 16386, lengthShift: 2, offsetMask: 0x0003, lengthMask: 0x3FFF},
		{dict: 16, maxOffset: 18, maxMatch: 4098, lengthShift: 4, offsetMask: 0x000F, lengthMask: 0x0FFF},
		{dict: 256, maxOffset: 258, maxMatch: 258, lengthShift: 8, offsetMask: 0x00FF, lengthMask: 0x00FF},
		{dict: 8192, maxOffset: 8194, maxMatch: 10, lengthShift: 13, offsetMask: 0x1FFF, lengthMask: 0x0007},
		{dict: 16384, maxOffset: 16386, maxMatch: 6, lengthShift: 14, offsetMask: 0x3FFF, lengthMask: 0x0003},
	}

	for _, c := range cases {
		p := newDictParams(c.dict)
		if p.maxOffset != c.maxOffset || p.maxMatch != c.maxMatch || p.lengthShift != c.lengthShift ||
			p.offsetMask != c.offsetMask || p.lengthMask != c.lengthMask {
			t.Fatalf("dict %d: got %+v, want %+v", c.dict, p, c)
		}

		// Longest and farthest match must still fit the 16-bit token.
		top := uint32(p.maxMatch-MinMatch)<<p.lengthShift | uint32(p.maxOffset-MinMatch)
		if top > 0xFFFF {
			t.Fatalf("dict %d: extreme token 0x%x exceeds 16 bits", c.dict, top)
		}
	}
}

func TestValidDictionaryLen(t *testing.T) {
	for _, d := range []int{4, 8, 1024, 8192, 16384} {
		if !validDictionaryLen(d) {
			t.Fatalf("dictionary %d should be valid", d)
		}
	}
	for _, d := range []int{-4, 0, 1, 2, 3, 100, 6000, 32768, 1 << 20} {
		if validDictionaryLen(d) {
			t.Fatalf("dictionary %d should be invalid", d)
		}
	}
}

func TestMaxCompressedLen(t *testing.T) {
	cases := []struct{ n, want int }{
		{n: 0, want: HeaderLen},
		{n: -1, want: HeaderLen},
		{n: 1, want: HeaderLen + 4 + 4 + 8},
		{n: 4, want: HeaderLen + 4 + 4 + 8},
		{n: 8, want: HeaderLen + 4 + 8 + 8},
		{n: 33, want: HeaderLen + 8 + 36 + 8},
		{n: 256, want: HeaderLen + 32 + 256 + 8},
	}

	for _, c := range cases {
		if got := MaxCompressedLen(c.n); got != c.want {
			t.Fatalf("MaxCompressedLen(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
