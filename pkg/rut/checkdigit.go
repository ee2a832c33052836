package rut

import (
	"strconv"
	"strings"
)

// CheckDigitK is the check character used when the weighted sum leaves a
// remainder of one.
const CheckDigitK = "k"

// CheckDigit computes the modulo-11 check character for a body. Dots are
// ignored; the weights 2 through 7 cycle from the rightmost digit.
//
// A body holding anything other than digits after dot removal has no check
// character and yields "". The empty body yields "0".
func CheckDigit(body string) string {
	body = strings.ReplaceAll(body, ".", "")

	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return ""
		}
		sum += int(c-'0') * weight
		if weight == 7 {
			weight = 2
		} else {
			weight++
		}
	}

	switch rem := sum % 11; rem {
	case 1:
		return CheckDigitK
	case 0:
		return "0"
	default:
		return strconv.Itoa(11 - rem)
	}
}
