// Package randgen provides the seedable randomness source threaded through
// every generation routine. Nothing in the seeder touches the global
// math/rand state, so a fixed seed reproduces a full run.
package randgen

import (
	"math/rand"
	"time"
)

// Rand is the draw surface the generators depend on. *Source is the real
// implementation; tests substitute scripted values.
type Rand interface {
	// IntBetween returns a uniform integer in [min, max], both inclusive.
	IntBetween(min, max int) int
	// FloatBetween returns a uniform float in [min, max).
	FloatBetween(min, max float64) float64
	// Percentile returns a uniform integer in [1, 100].
	Percentile() int
	// Index returns a uniform integer in [0, n).
	Index(n int) int
	// TimeInDay places a uniform hour/minute/second offset within the day
	// starting at the given midnight instant.
	TimeInDay(day time.Time) time.Time
}

type Source struct {
	r *rand.Rand
}

func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewFromClock seeds from the wall clock for normal runs.
func NewFromClock() *Source {
	return New(time.Now().UnixNano())
}

func (s *Source) IntBetween(min, max int) int {
	return min + s.r.Intn(max-min+1)
}

func (s *Source) FloatBetween(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

func (s *Source) Percentile() int {
	return s.IntBetween(1, 100)
}

func (s *Source) Index(n int) int {
	return s.r.Intn(n)
}

func (s *Source) TimeInDay(day time.Time) time.Time {
	return day.Add(
		time.Duration(s.IntBetween(0, 23))*time.Hour +
			time.Duration(s.IntBetween(0, 59))*time.Minute +
			time.Duration(s.IntBetween(0, 59))*time.Second)
}

// Pick returns a uniform element of items. Panics on an empty slice; callers
// check their preconditions first.
func Pick[T any](r Rand, items []T) T {
	return items[r.Index(len(items))]
}
