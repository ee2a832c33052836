package rut

import "strings"

// Validate reports whether s, formatted or not, carries the check character
// its body calls for. The check character comparison is case-insensitive.
// Inputs shorter than a body digit plus a check character are invalid.
func Validate(s string) bool {
	canonical := Unformat(s, false)
	if len([]rune(canonical)) < 2 {
		return false
	}
	body, check := split(canonical)
	expected := CheckDigit(body)
	return expected != "" && expected == strings.ToLower(check)
}
