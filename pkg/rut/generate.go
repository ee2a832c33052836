package rut

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// randomDigits is the number of random digits appended after the leading
// segment of a generated body.
const randomDigits = 6

// Range bounds the leading numeric segment of generated identifiers,
// inclusive on both ends.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultRange reflects the leading segments observed for real identifiers.
var DefaultRange = Range{Min: 1, Max: 27}

// MaxLeadingSegment is the largest leading segment a Generator draws. The
// span of any range clamped to it fits in an int.
const MaxLeadingSegment = math.MaxInt - 1

// normalized swaps inverted bounds and clamps both bounds to
// [0, MaxLeadingSegment].
func (r Range) normalized() Range {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	r.Min = min(max(r.Min, 0), MaxLeadingSegment)
	r.Max = min(max(r.Max, 0), MaxLeadingSegment)
	return r
}

// RandSource supplies uniform integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces random, syntactically valid identifiers.
type Generator struct {
	src RandSource
}

// NewGenerator returns a Generator drawing from src. A nil src uses the
// process-wide math/rand/v2 source.
func NewGenerator(src RandSource) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate returns quantity identifiers in display form from the process-wide
// random source. It returns an empty slice when quantity is not positive.
func Generate(quantity int, r Range) []string {
	return defaultGenerator.Generate(quantity, r)
}

// Generate returns quantity identifiers in display form. Each body is a
// leading segment drawn uniformly from r followed by six uniform digits.
func (g *Generator) Generate(quantity int, r Range) []string {
	if quantity <= 0 {
		return []string{}
	}
	r = r.normalized()

	out := make([]string, 0, quantity)
	for range quantity {
		body := g.body(r)
		out = append(out, Format(body+CheckDigit(body), false))
	}
	return out
}

// One returns a single identifier in display form.
func (g *Generator) One(r Range) string {
	return g.Generate(1, r)[0]
}

func (g *Generator) body(r Range) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.Min + g.src.IntN(r.Max-r.Min+1)))
	for range randomDigits {
		b.WriteByte(byte('0' + g.src.IntN(10)))
	}
	return b.String()
}
