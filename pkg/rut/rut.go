package rut

import (
	"errors"
	"strings"
)

var (
	// ErrTooShort indicates fewer than a body digit plus a check character.
	ErrTooShort = errors.New("rut: identifier too short")
	// ErrInvalidRUT indicates the check character does not match the body.
	ErrInvalidRUT = errors.New("rut: invalid identifier")
)

// RUT is a validated identifier held in canonical form.
//
// Invariants:
//   - Body is non-empty and made of decimal digits
//   - Check character equals CheckDigit(Body)
//
// The zero value is not a valid identifier; see IsZero.
type RUT struct {
	canonical string
}

// Parse validates s, formatted or not, and returns it as a RUT.
func Parse(s string) (RUT, error) {
	canonical := Unformat(strings.TrimSpace(s), false)
	if len([]rune(canonical)) < 2 {
		return RUT{}, ErrTooShort
	}
	if !Validate(canonical) {
		return RUT{}, ErrInvalidRUT
	}
	return RUT{canonical: canonical}, nil
}

// MustParse is like Parse but panics on invalid input.
// Use only in tests or for identifiers known to be valid.
func MustParse(s string) RUT {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Body returns the digits before the check character.
func (r RUT) Body() string {
	body, _ := split(r.canonical)
	return body
}

// CheckDigit returns the check character, "0" through "9" or "k".
func (r RUT) CheckDigit() string {
	_, check := split(r.canonical)
	return check
}

// Canonical returns the identifier without separators.
func (r RUT) Canonical() string {
	return r.canonical
}

// Format returns the display form, optionally zero-padded.
func (r RUT) Format(zeroPad bool) string {
	if r.IsZero() {
		return ""
	}
	return Format(r.canonical, zeroPad)
}

// String returns the display form.
func (r RUT) String() string {
	return r.Format(false)
}

// Mask returns the display form with all but the last three body digits
// replaced by "*", for logs and audit trails.
func (r RUT) Mask() string {
	if r.IsZero() {
		return ""
	}
	body := []byte(r.Body())
	for i := 0; i < len(body)-3; i++ {
		body[i] = '*'
	}
	return groupThousands(string(body)) + "-" + r.CheckDigit()
}

// IsZero reports whether r is the zero value.
func (r RUT) IsZero() bool {
	return r.canonical == ""
}

// Equal reports whether r and other denote the same identifier. Leading
// zeros in the body are not significant.
func (r RUT) Equal(other RUT) bool {
	return strings.TrimLeft(r.canonical, "0") == strings.TrimLeft(other.canonical, "0")
}

// EstimateAge is the method form of EstimateAge.
func (r RUT) EstimateAge() (AgeEstimate, error) {
	return EstimateAge(r.canonical)
}
