// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss32

package lzss32

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrInvalidDictionaryLen is returned when the dictionary length is not a
	// power of two or lies outside [MinDictionaryLen, MaxDictionaryLen].
	ErrInvalidDictionaryLen = errors.New("invalid dictionary length")
	// ErrOutputTooSmall is returned when the destination buffer cannot hold the
	// result. Retry the same call with a larger buffer; nothing useful was written.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrCorruptStream is returned when a packed stream ends early or decodes to
	// an impossible back-reference. The format carries no checksum, so this is
	// the only corruption the decoder can detect.
	ErrCorruptStream = errors.New("corrupt lzss32 stream")
	// ErrInputTooLarge is returned when the input does not fit the header's
	// 32-bit uncompressed-length field.
	ErrInputTooLarge = errors.New("input exceeds 4 GiB format limit")
)
