package secretary

import "math"

// Approx is the large-n approximation s/n * ln(n/s) of the probability that
// threshold s selects the best candidate. It is 0 at s == 0, the limit of
// the expression.
func Approx(s, n int) float64 {
	if s <= 0 || n <= 0 {
		return 0
	}
	x := float64(s) / float64(n)
	return -x * math.Log(x)
}

// Exact is the probability that threshold s selects the best of n
// candidates:
//
//	P(0)  = 1/n
//	P(s)  = s/n * sum_{k=s}^{n-1} 1/k   for 1 <= s < n
//	P(s)  = 1/n                          for s >= n (last candidate)
func Exact(s, n int) float64 {
	if n <= 0 || s < 0 {
		return 0
	}
	if s == 0 || s >= n {
		return 1 / float64(n)
	}
	var sum float64
	for k := n - 1; k >= s; k-- {
		sum += 1 / float64(k)
	}
	return float64(s) / float64(n) * sum
}

// OptimalThreshold returns the threshold maximizing Exact for n candidates,
// and that probability. Ties go to the smaller threshold.
func OptimalThreshold(n int) (int, float64) {
	if n <= 0 {
		return 0, 0
	}
	best, bestP := 0, Exact(0, n)
	for s := 1; s < n; s++ {
		if p := Exact(s, n); p > bestP {
			best, bestP = s, p
		}
	}
	return best, bestP
}
