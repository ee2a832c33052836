package rut

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource replays a fixed list of values, reduced modulo n.
type sequenceSource struct {
	values []int
	next   int
	calls  []int
}

func (s *sequenceSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestGenerator_Deterministic(t *testing.T) {
	src := &sequenceSource{values: []int{11, 1, 2, 3, 4, 5, 6}}
	g := NewGenerator(src)

	got := g.Generate(1, DefaultRange)
	require.Len(t, got, 1)

	// Leading segment 1 + 11 = 12, then digits 123456.
	assert.Equal(t, "12.123.456-"+CheckDigit("12123456"), got[0])
	assert.Equal(t, []int{27, 10, 10, 10, 10, 10, 10}, src.calls)
}

func TestGenerator_Range(t *testing.T) {
	t.Run("inverted bounds are swapped", func(t *testing.T) {
		src := &sequenceSource{values: []int{0}}
		got := NewGenerator(src).One(Range{Min: 9, Max: 5})
		assert.Equal(t, 5, src.calls[0])
		assert.Equal(t, "5.000.000-"+CheckDigit("5000000"), got)
	})

	t.Run("negative bounds clamp to zero", func(t *testing.T) {
		src := &sequenceSource{values: []int{0}}
		got := NewGenerator(src).One(Range{Min: -10, Max: -1})
		assert.Equal(t, 1, src.calls[0])
		assert.True(t, Validate(got))
	})

	t.Run("full int range draws from a positive span", func(t *testing.T) {
		src := &sequenceSource{values: []int{0}}
		got := NewGenerator(src).One(Range{Min: 0, Max: math.MaxInt})
		assert.Equal(t, math.MaxInt, src.calls[0])
		assert.True(t, Validate(got))
	})

	t.Run("upper bound clamps to the largest leading segment", func(t *testing.T) {
		src := &sequenceSource{values: []int{0}}
		got := NewGenerator(src).One(Range{Min: math.MaxInt, Max: math.MaxInt})
		assert.Equal(t, 1, src.calls[0])
		assert.Equal(t, "9223372036854775806000000", MustParse(got).Body())
	})

	t.Run("extreme ranges never panic", func(t *testing.T) {
		g := NewGenerator(rand.New(rand.NewPCG(3, 4)))
		for _, r := range []Range{
			{Min: 0, Max: math.MaxInt},
			{Min: math.MinInt, Max: math.MaxInt},
			{Min: math.MaxInt, Max: math.MinInt},
			{Min: MaxLeadingSegment, Max: math.MaxInt},
		} {
			require.NotPanics(t, func() {
				for _, id := range g.Generate(20, r) {
					assert.True(t, Validate(id), "%+v: %s", r, id)
				}
			})
		}
	})

	t.Run("single value range", func(t *testing.T) {
		src := &sequenceSource{values: []int{7}}
		got := NewGenerator(src).One(Range{Min: 20, Max: 20})
		assert.Equal(t, "20.777.777-"+CheckDigit("20777777"), got)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("returns the requested quantity of valid identifiers", func(t *testing.T) {
		got := Generate(5, DefaultRange)
		require.Len(t, got, 5)
		for _, r := range got {
			assert.True(t, Validate(r), r)
			assert.Equal(t, r, Format(r, false), "output is already in display form")
		}
	})

	t.Run("leading segment stays within range", func(t *testing.T) {
		g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
		for _, r := range g.Generate(200, Range{Min: 3, Max: 4}) {
			body := MustParse(r).Body()
			require.Len(t, body, 7)
			assert.Contains(t, []byte{'3', '4'}, body[0])
		}
	})

	t.Run("non-positive quantity yields empty slice", func(t *testing.T) {
		assert.Empty(t, Generate(0, DefaultRange))
		assert.NotNil(t, Generate(-3, DefaultRange))
	})

	t.Run("nil source falls back to global", func(t *testing.T) {
		assert.True(t, Validate(NewGenerator(nil).One(DefaultRange)))
	})
}
