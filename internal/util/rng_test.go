package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ZeroSeedMapsToOne(t *testing.T) {
	a, b := New(0), New(1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, b.Float64(), a.Float64())
	}
}

func TestSequence_Wraps(t *testing.T) {
	s := Sequence(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	assert.Equal(t, []float64{0.1, 0.2, 0.1}, got)
	assert.Equal(t, 0.0, Sequence().Float64())
}

func TestIntn(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want int
	}{
		{0, 3, 0},
		{0.5, 3, 1},
		{0.999, 3, 2},
		{1, 3, 2},
		{-0.5, 3, 0},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Intn(Fixed(tt.v), tt.n), "v=%v n=%d", tt.v, tt.n)
	}
}

func TestCounting(t *testing.T) {
	c := &Counting{Src: Fixed(0.25)}
	c.Float64()
	c.Float64()
	assert.Equal(t, 2, c.Draws)
}
