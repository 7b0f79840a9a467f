package keychain

import "strings"

// extract scans text for an assignment of the form `name=value;` and returns
// the value, which runs from the `=` up to the first following semicolon. A
// missing terminator or a value rejected by valid makes the scan resume after
// the marker, so a later well-formed assignment still wins. No match returns
// the empty string.
func extract(text, name string, valid func(string) bool) string {
	marker := name + "="
	for off := 0; off < len(text); {
		i := strings.Index(text[off:], marker)
		if i < 0 {
			break
		}
		start := off + i + len(marker)
		end := strings.IndexByte(text[start:], ';')
		if end < 0 {
			break
		}
		value := text[start : start+end]
		if valid == nil || valid(value) {
			return value
		}
		off = start
	}
	return ""
}

// digits reports whether s is a (possibly empty) run of decimal digits.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
