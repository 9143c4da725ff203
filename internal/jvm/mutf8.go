package jvm

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// EncodeModifiedUTF8 encodes s the way CONSTANT_Utf8 entries store strings:
// NUL takes two bytes and supplementary characters are written as surrogate pairs.
func EncodeModifiedUTF8(s string) []byte {
	out := make([]byte, 0, len(s))

	for _, r := range s {
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			out = appendChar(out, uint16(hi))
			out = appendChar(out, uint16(lo))

			continue
		}

		out = appendChar(out, uint16(r))
	}

	return out
}

// ModifiedUTF8Len returns len(EncodeModifiedUTF8(s)) without allocating.
func ModifiedUTF8Len(s string) int {
	n := 0

	for _, r := range s {
		switch {
		case r > 0xFFFF:
			n += 6
		default:
			n += charLen(uint16(r))
		}
	}

	return n
}

func charLen(c uint16) int {
	switch {
	case c != 0 && c < 0x80:
		return 1
	case c < 0x800:
		return 2
	default:
		return 3
	}
}

func appendChar(out []byte, c uint16) []byte {
	switch charLen(c) {
	case 1:
		return append(out, byte(c))
	case 2:
		return append(out, 0xC0|byte(c>>6), 0x80|byte(c&0x3F))
	default:
		return append(out, 0xE0|byte(c>>12), 0x80|byte((c>>6)&0x3F), 0x80|byte(c&0x3F))
	}
}

// DecodeModifiedUTF8 reverses EncodeModifiedUTF8.
func DecodeModifiedUTF8(b []byte) (string, error) {
	chars := make([]uint16, 0, len(b))

	for i := 0; i < len(b); {
		c := b[i]

		switch {
		case c&0x80 == 0:
			chars = append(chars, uint16(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) {
				return "", errors.New("truncated two-byte sequence")
			}

			chars = append(chars, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) {
				return "", errors.New("truncated three-byte sequence")
			}

			chars = append(chars, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			return "", errors.Newf("invalid modified UTF-8 byte 0x%02x", c)
		}
	}

	runes := utf16.Decode(chars)

	buf := make([]byte, 0, len(runes))
	for _, r := range runes {
		buf = utf8.AppendRune(buf, r)
	}

	return string(buf), nil
}
