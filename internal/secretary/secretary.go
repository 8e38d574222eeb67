// Package secretary implements the threshold stopping rule of the classical
// secretary problem.
//
// A population of n candidates with distinct ranks 0..n-1 (n-1 is the best)
// arrives in uniformly random order. The first s candidates are only observed
// to calibrate a threshold; afterwards the first candidate ranked strictly
// above every calibration candidate is accepted. If nobody qualifies, the
// last candidate is taken.
package secretary

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPopulation is returned when the population size is not positive.
	ErrInvalidPopulation = errors.New("secretary: population must be positive")
	// ErrNegativeThreshold is returned when the calibration sample size is negative.
	ErrNegativeThreshold = errors.New("secretary: threshold must be non-negative")
)

// noCandidate is the calibration maximum of an empty sample. Ranks are never
// negative, so every candidate beats it.
const noCandidate = -1

// Source is the randomness a trial consumes. *rng.FastRNG and the
// *rand.Rand of math/rand/v2 both satisfy it.
type Source interface {
	IntN(n int) int
}

// Trial records how a single trial reached its outcome.
type Trial struct {
	Permutation []int `json:"permutation"`
	Threshold   int   `json:"threshold"`
	// BestOfSample is -1 when the calibration sample is empty.
	BestOfSample int `json:"best_of_sample"`
	// Position is the index in Permutation of the accepted candidate.
	Position int `json:"position"`
	Outcome  int `json:"outcome"`
	// Fallback is set when no candidate beat the calibration maximum and the
	// last one was taken.
	Fallback bool `json:"fallback"`
}

// Best reports whether the trial selected the top ranked candidate.
func (t Trial) Best() bool {
	return t.Outcome == len(t.Permutation)-1
}

// Validate checks the (s, n) contract shared by every entry point.
func Validate(s, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPopulation, n)
	}
	if s < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeThreshold, s)
	}
	return nil
}

// Permutation returns a uniformly random ordering of 0..n-1.
func Permutation(n int, src Source) []int {
	perm := make([]int, n)
	fill(perm, src)
	return perm
}

// shuffler is implemented by sources with their own Fisher-Yates shuffle,
// such as rng.FastRNG and *rand.Rand.
type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

func fill(perm []int, src Source) {
	for i := range perm {
		perm[i] = i
	}
	if sh, ok := src.(shuffler); ok {
		sh.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		return
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
}

// Select applies the stopping rule to a fixed arrival order and returns the
// selected rank. A threshold at or past len(perm) leaves nothing to scan and
// yields the last candidate; a negative threshold is treated as zero. perm
// must not be empty.
func Select(perm []int, s int) int {
	pos, _, _ := decide(perm, s)
	return perm[pos]
}

func decide(perm []int, s int) (pos, best int, fallback bool) {
	s = max(0, min(s, len(perm)))

	best = noCandidate
	for _, v := range perm[:s] {
		if v > best {
			best = v
		}
	}

	for i := s; i < len(perm); i++ {
		if perm[i] > best {
			return i, best, false
		}
	}
	return len(perm) - 1, best, true
}

// Sample runs one trial on a fresh permutation of n candidates and returns
// the selected rank.
func Sample(s, n int, src Source) (int, error) {
	if err := Validate(s, n); err != nil {
		return 0, err
	}
	return Select(Permutation(n, src), s), nil
}

// Trace is Sample with the full record of the trial.
func Trace(s, n int, src Source) (Trial, error) {
	if err := Validate(s, n); err != nil {
		return Trial{}, err
	}
	perm := Permutation(n, src)
	pos, best, fallback := decide(perm, s)
	return Trial{
		Permutation:  perm,
		Threshold:    s,
		BestOfSample: best,
		Position:     pos,
		Outcome:      perm[pos],
		Fallback:     fallback,
	}, nil
}

// Sampler runs repeated trials for one population size, reusing its
// permutation buffer between calls. It is not safe for concurrent use.
type Sampler struct {
	src  Source
	perm []int
}

// NewSampler returns a Sampler for n candidates drawing from src.
func NewSampler(n int, src Source) (*Sampler, error) {
	if err := Validate(0, n); err != nil {
		return nil, err
	}
	return &Sampler{src: src, perm: make([]int, n)}, nil
}

// Population returns the number of candidates per trial.
func (sm *Sampler) Population() int {
	return len(sm.perm)
}

// Sample draws a fresh permutation and applies the stopping rule with
// threshold s. s must be non-negative.
func (sm *Sampler) Sample(s int) int {
	fill(sm.perm, sm.src)
	return Select(sm.perm, s)
}
