package rut

import "strings"

const (
	// CanonicalLength is the zero-padded canonical length: a ten digit body
	// plus the check character.
	CanonicalLength = 11

	// BodyLength is the zero-padded body length used by Format.
	BodyLength = 10
)

var separatorReplacer = strings.NewReplacer(".", "", "-", "")

// Unformat strips the display separators and lower-cases the result. When
// zeroPad is set the result is left-padded with zeros to CanonicalLength.
// Characters other than "." and "-" are not inspected.
func Unformat(s string, zeroPad bool) string {
	out := strings.ToLower(separatorReplacer.Replace(s))
	if zeroPad {
		out = padLeft(out, CanonicalLength)
	}
	return out
}

// padLeft left-pads s with '0' until it holds n characters.
func padLeft(s string, n int) string {
	if missing := n - len([]rune(s)); missing > 0 {
		return strings.Repeat("0", missing) + s
	}
	return s
}

// split separates a normalized identifier into body and check character.
func split(canonical string) (body, check string) {
	runes := []rune(canonical)
	if len(runes) == 0 {
		return "", ""
	}
	return string(runes[:len(runes)-1]), string(runes[len(runes)-1])
}
