package render

import (
	"encoding/hex"
	"strconv"
	"unicode/utf8"
)

// appendEscaped appends s to dst with non-printable runes hex-encoded as
// "<xx>", so terminal control sequences cannot corrupt the stream and the
// newline written by Ln stays the only line break in a segment.
func appendEscaped(dst []byte, s string) []byte {
	for _, r := range s {
		if strconv.IsPrint(r) {
			dst = utf8.AppendRune(dst, r)
			continue
		}
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], r)
		dst = append(dst, '<')
		dst = append(dst, hex.EncodeToString(enc[:n])...)
		dst = append(dst, '>')
	}
	return dst
}
