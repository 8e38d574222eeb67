package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastRNG_Deterministic(t *testing.T) {
	a := NewFastRNG(12345)
	b := NewFastRNG(12345)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
}

func TestFastRNG_IntN(t *testing.T) {
	r := NewFastRNG(7)
	const n = 6
	counts := make([]int, n)
	const draws = 60000
	for i := 0; i < draws; i++ {
		v := r.IntN(n)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		counts[v]++
	}
	for v, c := range counts {
		assert.InDelta(t, draws/n, c, 0.05*draws/n, "value %d drawn %d times", v, c)
	}
}

func TestFastRNG_IntNPanicsOnNonPositive(t *testing.T) {
	r := NewFastRNG(1)
	assert.Panics(t, func() { r.IntN(0) })
	assert.Panics(t, func() { r.IntN(-3) })
}

func TestFastRNG_ShuffleIsPermutation(t *testing.T) {
	r := NewFastRNG(99)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, xs)
}

func TestFastRNG_ShuffleUniformFirstPosition(t *testing.T) {
	r := NewFastRNG(2024)
	const n = 4
	const rounds = 40000
	counts := make([]int, n)
	xs := make([]int, n)
	for k := 0; k < rounds; k++ {
		for i := range xs {
			xs[i] = i
		}
		r.Shuffle(n, func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		counts[xs[0]]++
	}
	for v, c := range counts {
		assert.InDelta(t, rounds/n, c, 0.05*rounds/n, "value %d first %d times", v, c)
	}
}

func TestDerive(t *testing.T) {
	seen := make(map[int64]int)
	for stream := 0; stream < 1000; stream++ {
		s := Derive(42, stream)
		prev, dup := seen[s]
		require.False(t, dup, "streams %d and %d collide", prev, stream)
		seen[s] = stream
	}
	assert.Equal(t, Derive(42, 3), Derive(42, 3))
	assert.NotEqual(t, Derive(42, 3), Derive(43, 3))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(17), Seed(17))
	assert.NotZero(t, Seed(0))
}

func BenchmarkFastRNGIntN(b *testing.B) {
	r := NewFastRNG(12345)
	for i := 0; i < b.N; i++ {
		r.IntN(100)
	}
}
