package sweep

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// OnlineStats tracks running mean and variance
type OnlineStats struct {
	n    int
	mean float64
	m2   float64 // Sum of squared differences from mean
}

func (s *OnlineStats) Add(x float64) {
	s.n++
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	delta2 := x - s.mean
	s.m2 += delta * delta2
}

func (s *OnlineStats) Mean() float64 {
	return s.mean
}

func (s *OnlineStats) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

func (s *OnlineStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *OnlineStats) StdErr() float64 {
	if s.n < 2 {
		return math.Inf(1)
	}
	return s.StdDev() / math.Sqrt(float64(s.n))
}

// relStdErrBelow reports whether the relative standard error is under
// target. The relative error is undefined at a zero mean, so that never
// counts as converged.
func (s *OnlineStats) relStdErrBelow(target float64) bool {
	if s.n < 2 || s.mean == 0 {
		return false
	}
	return s.StdErr()/math.Abs(s.mean) <= target
}

// Summary reduces a sequence of outcomes.
type Summary struct {
	Trials        int     `json:"trials"`
	Mean          float64 `json:"mean"`
	StdDev        float64 `json:"std_dev"`
	StdErr        float64 `json:"std_err"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	SuccessStdErr float64 `json:"success_std_err"`
}

// Summarize computes the mean outcome and the frequency of target among
// outcomes.
func Summarize(outcomes []float64, target int) Summary {
	n := len(outcomes)
	if n == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(outcomes, nil)
	if n < 2 {
		std = 0
	}

	hits := 0
	for _, o := range outcomes {
		if int(o) == target {
			hits++
		}
	}
	rate := float64(hits) / float64(n)

	return Summary{
		Trials:        n,
		Mean:          mean,
		StdDev:        std,
		StdErr:        std / math.Sqrt(float64(n)),
		Successes:     hits,
		SuccessRate:   rate,
		SuccessStdErr: math.Sqrt(rate * (1 - rate) / float64(n)),
	}
}
