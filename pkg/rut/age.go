package rut

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Linear fit of birth date (fractional year) against the identifier body,
// after Fabián Villena's "rut-a-edad" regression. Reproduced verbatim.
const (
	ageSlope     = 3.3363697569700348e-06
	ageIntercept = 1932.2573852507373
)

// maxEstimate bounds the regression output. Past 2^53 a float64 no longer
// holds every integer, so neither year nor month can be resolved.
const maxEstimate = 1 << 53

var (
	// ErrNonNumericBody is returned when the body of an identifier holds
	// anything other than decimal digits.
	ErrNonNumericBody = errors.New("rut: body is not numeric")
	// ErrBodyOutOfRange is returned when a numeric body is too large for the
	// regression to yield a year.
	ErrBodyOutOfRange = errors.New("rut: body out of range for age estimation")
)

// AgeEstimate is a statistical guess at a holder's birth month and age. The
// model cannot resolve the day of birth and carries no accuracy guarantee;
// Age may be negative for implausibly small or large bodies.
type AgeEstimate struct {
	Age   int `json:"age"`
	Year  int `json:"year"`
	Month int `json:"month"`
}

// EstimateAge estimates birth year, birth month and age relative to the
// current date. See EstimateAgeAt.
func EstimateAge(s string) (AgeEstimate, error) {
	return EstimateAgeAt(s, time.Now())
}

// EstimateAgeAt estimates birth year, birth month and age relative to now.
// The last character of s is taken as the check character and ignored; an
// empty body reads as zero.
func EstimateAgeAt(s string, now time.Time) (AgeEstimate, error) {
	body, _ := split(Unformat(s, false))

	var n float64
	if body != "" {
		if !isDigits(body) {
			return AgeEstimate{}, fmt.Errorf("%w: %q", ErrNonNumericBody, body)
		}
		// Digits only: the sole possible failure is a range error, which
		// the bound check below reports.
		n, _ = strconv.ParseFloat(body, 64)
	}

	year, month, ok := estimateBirth(n)
	if !ok {
		return AgeEstimate{}, fmt.Errorf("%w: %d digits", ErrBodyOutOfRange, len(body))
	}

	age := now.Year() - year
	if int(now.Month()) <= month {
		age--
	}
	return AgeEstimate{Age: age, Year: year, Month: month}, nil
}

// estimateBirth applies the regression and returns the birth year and the
// 1-indexed birth month. ok is false when the result is beyond maxEstimate.
func estimateBirth(n float64) (year, month int, ok bool) {
	v := n*ageSlope + ageIntercept
	if math.IsInf(v, 0) || v >= maxEstimate {
		return 0, 0, false
	}
	whole := math.Floor(v)
	year = int(whole)
	month = int(math.Ceil((v - whole) * 12))
	if month == 0 {
		month = 12
		year--
	}
	return year, month, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
