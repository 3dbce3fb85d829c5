package util

import "math/rand"

// Source is the only randomness the simulation consumes. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Func adapts a plain function to Source.
type Func func() float64

func (f Func) Float64() float64 { return f() }

// Fixed returns a source that always yields v.
func Fixed(v float64) Source {
	return Func(func() float64 { return v })
}

// Sequence replays vs in order and wraps around when exhausted.
func Sequence(vs ...float64) Source {
	if len(vs) == 0 {
		return Fixed(0)
	}
	i := 0
	return Func(func() float64 {
		v := vs[i%len(vs)]
		i++
		return v
	})
}

// Counting wraps a source and counts draws.
type Counting struct {
	Src   Source
	Draws int
}

func (c *Counting) Float64() float64 {
	c.Draws++
	return c.Src.Float64()
}

// Intn maps one draw onto [0, n). Values >= 1 from scripted sources clamp to n-1.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
