// Package random provides the injectable randomness used by mastery upgrades
// and damage rolls. Production code seeds from crypto/rand; tests pass a
// fixed seed or a scripted Source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the subset of *rand.Rand the game model draws from.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Locked is a seeded Source safe for concurrent use.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source that is deterministic for a given seed.
func New(seed int64) *Locked {
	return &Locked{rng: rand.New(rand.NewSource(seed))}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// Fixed replays scripted values; once exhausted it repeats the last one.
// A Fixed with no values returns 0 for both methods.
type Fixed struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
}

func (f *Fixed) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[0]
	if len(f.Floats) > 1 {
		f.Floats = f.Floats[1:]
	}
	return v
}

func (f *Fixed) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[0]
	if len(f.Ints) > 1 {
		f.Ints = f.Ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}
