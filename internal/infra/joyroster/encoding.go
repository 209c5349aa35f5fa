package joyroster

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeRoster converts raw entry-list bytes to UTF-8. JOY exports show up as
// UTF-8 (with or without BOM), CP932/Shift_JIS, or EUC-JP depending on which
// tool wrote them; the first encoding that decodes cleanly wins.
func decodeRoster(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}

	for _, enc := range []encoding.Encoding{japanese.ShiftJIS, japanese.EUCJP} {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
			return string(decoded)
		}
	}

	// Lossy fallback; malformed cells surface as replacement runes.
	return string(raw)
}

// normalizeWhitespace folds a cell value into a canonical form: ideographic
// spaces become ASCII, NFKC maps full-width letters and digits to half-width,
// and whitespace runs collapse to single spaces.
func normalizeWhitespace(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "　", " ")
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
