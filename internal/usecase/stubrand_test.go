package usecase

import "time"

// stubRand scripts individual draws. Unscripted IntBetween calls return min,
// unscripted Percentile calls return 1, Index always returns 0 and TimeInDay
// returns the day unchanged.
type stubRand struct {
	ints  []int
	pcts  []int
	float float64
}

func (s *stubRand) IntBetween(min, _ int) int {
	if len(s.ints) > 0 {
		v := s.ints[0]
		s.ints = s.ints[1:]
		return v
	}
	return min
}

func (s *stubRand) FloatBetween(_, _ float64) float64 { return s.float }

func (s *stubRand) Percentile() int {
	if len(s.pcts) > 0 {
		v := s.pcts[0]
		s.pcts = s.pcts[1:]
		return v
	}
	return 1
}

func (s *stubRand) Index(_ int) int { return 0 }

func (s *stubRand) TimeInDay(day time.Time) time.Time { return day }
