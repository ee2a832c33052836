package rut

import "strings"

// Format renders s in display form: the body grouped in threes from the
// right with ".", then "-" and the check character, all lower-case. With
// zeroPad the body is left-padded with zeros to BodyLength first.
//
// Format does not validate; Format(Unformat(Format(x))) == Format(x).
func Format(s string, zeroPad bool) string {
	body, check := split(Unformat(s, false))
	if zeroPad {
		body = padLeft(body, BodyLength)
	}

	var b strings.Builder
	b.Grow(len(body) + len(body)/3 + 1 + len(check))
	b.WriteString(groupThousands(body))
	b.WriteByte('-')
	b.WriteString(check)
	return strings.ToLower(b.String())
}

// groupThousands inserts "." every three characters counted from the right.
func groupThousands(body string) string {
	runes := []rune(body)
	n := len(runes)
	if n <= 3 {
		return body
	}

	out := make([]rune, 0, n+(n-1)/3)
	for i, r := range runes {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, r)
	}
	return string(out)
}
