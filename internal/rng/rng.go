// Package rng provides the two random capabilities used by the game: a
// reproducible Mulberry32 stream for level content and an ambient stream for
// combat variance and effect coin flips.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Stream produces values in [0, 1).
type Stream interface {
	Float64() float64
}

// Intn returns floor(s.Float64() * n). Returns 0 when n <= 0.
func Intn(s Stream, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Range returns an integer in [lo, hi] inclusive.
func Range(s Stream, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + Intn(s, hi-lo+1)
}

// Chance returns true with probability p.
func Chance(s Stream, p float64) bool {
	return s.Float64() < p
}

// Deterministic is a Mulberry32 generator. The same seed always yields the
// same sequence.
type Deterministic struct {
	state uint32
	seed  uint32
}

// NewDeterministic creates a generator seeded with seed.
func NewDeterministic(seed uint32) *Deterministic {
	return &Deterministic{state: seed, seed: seed}
}

// Float64 returns the next value in [0, 1).
func (d *Deterministic) Float64() float64 {
	d.state += 0x6D2B79F5
	t := d.state
	t = (t ^ (t >> 15)) * (t | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return float64(t^(t>>14)) / 4294967296.0
}

// Seed returns the seed the generator was created with.
func (d *Deterministic) Seed() uint32 {
	return d.seed
}

// At returns the first value of a fresh stream seeded with seed. It is a pure
// function of seed.
func At(seed uint32) float64 {
	return NewDeterministic(seed).Float64()
}

// Purpose selects the sub-seed lane for a category of generated content.
type Purpose int

const (
	Layout Purpose = iota
	Enemy
	Item
	Encounter
)

const depthStride = 1000

// offset returns the lane offset added on top of the depth stride.
func (p Purpose) offset() uint32 {
	switch p {
	case Enemy:
		return 100
	case Item:
		return 200
	case Encounter:
		return 300
	default:
		return 0
	}
}

// String returns the purpose name.
func (p Purpose) String() string {
	switch p {
	case Layout:
		return "layout"
	case Enemy:
		return "enemy"
	case Item:
		return "item"
	case Encounter:
		return "encounter"
	default:
		return "unknown"
	}
}

// SubSeed derives base + depth*1000 + purpose offset + index. Arithmetic
// wraps at 32 bits.
func SubSeed(base uint32, depth int, purpose Purpose, index int) uint32 {
	return base + uint32(depth)*depthStride + purpose.offset() + uint32(index)
}

// Ambient is a non-reproducible stream backed by math/rand/v2.
type Ambient struct {
	r *rand.Rand
}

// NewAmbient returns an ambient stream seeded from the runtime source.
func NewAmbient() *Ambient {
	return &Ambient{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Float64 returns the next value in [0, 1).
func (a *Ambient) Float64() float64 {
	return a.r.Float64()
}

// Fixed replays a fixed list of values, cycling when exhausted. Intended for
// tests that need predictable combat rolls.
type Fixed struct {
	values []float64
	pos    int
}

// NewFixed creates a Fixed stream. With no values it always returns 0.
func NewFixed(values ...float64) *Fixed {
	return &Fixed{values: values}
}

// Float64 returns the next configured value.
func (f *Fixed) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}

// NewSeed returns a fresh 32-bit seed from crypto/rand.
func NewSeed() (uint32, error) {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
