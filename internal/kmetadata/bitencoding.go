package kmetadata

import (
	"strings"
	"unicode/utf8"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

const (
	// maxChunkLength bounds each d1 string by its modified UTF-8 length,
	// the limit of a CONSTANT_Utf8 entry.
	maxChunkLength = 65535

	utf8ModeMarker = '\u0000'
)

// BytesToStrings packs protobuf bytes into d1 strings: a leading marker
// selects the UTF-8 mode, then every byte becomes the char of the same value.
func BytesToStrings(data []byte) []string {
	var (
		out     []string
		sb      strings.Builder
		encoded int
	)

	sb.WriteRune(utf8ModeMarker)

	// U+0000 takes two bytes in modified UTF-8.
	encoded += 2

	for _, b := range data {
		sb.WriteRune(rune(b))

		if b >= 1 && b <= 127 {
			encoded++
		} else {
			encoded += 2
		}

		if encoded >= maxChunkLength-1 {
			out = append(out, sb.String())
			sb.Reset()

			encoded = 0
		}
	}

	if sb.Len() > 0 {
		out = append(out, sb.String())
	}

	return out
}

// StringsToBytes reverses BytesToStrings.
func StringsToBytes(strs []string) ([]byte, error) {
	if len(strs) == 0 || !strings.HasPrefix(strs[0], string(utf8ModeMarker)) {
		return nil, errors.New("d1 is not in UTF-8 mode")
	}

	var out []byte

	for i, s := range strs {
		if i == 0 {
			s = s[1:]
		}

		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			if r > 0xff || (r == utf8.RuneError && size == 1) {
				return nil, errors.Newf("d1[%d]: char %U out of byte range", i, r)
			}

			out = append(out, byte(r))
			s = s[size:]
		}
	}

	return out, nil
}
