package analyzer

import "unicode/utf16"

// Hash folds text into [0, modulus) with the h*31+c polynomial over UTF-16
// code units. The accumulator wraps as a signed 32-bit integer.
func Hash(text string, modulus int) int {
	if modulus <= 0 {
		return 0
	}

	var h int32
	for _, code := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(code)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(modulus))
}

// seedPrefix returns the first n UTF-16 code units of s, or all of s when shorter.
func seedPrefix(s string, n int) string {
	units := utf16.Encode([]rune(s))
	if len(units) <= n {
		return s
	}
	return string(utf16.Decode(units[:n]))
}
