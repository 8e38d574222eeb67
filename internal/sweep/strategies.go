package sweep

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidRange is returned by Strategies for a range that yields nothing.
var ErrInvalidRange = errors.New("sweep: invalid strategy range")

// Strategies returns start, start+step, ... up to but excluding stop.
func Strategies(start, stop, step int) ([]int, error) {
	if step <= 0 || start < 0 || stop <= start {
		return nil, fmt.Errorf("%w: start=%d stop=%d step=%d", ErrInvalidRange, start, stop, step)
	}
	out := make([]int, 0, (stop-start+step-1)/step)
	for s := start; s < stop; s += step {
		out = append(out, s)
	}
	return out, nil
}

// DemoParams returns the parameters of the small demonstration run: thresholds
// 5 to 40 in steps of 5, 100 trials each over 100 candidates, keeping every
// outcome.
func DemoParams(seed int64) Params {
	strategies, _ := Strategies(5, 45, 5)
	return Params{
		Population:   100,
		Strategies:   strategies,
		Trials:       100,
		Seed:         seed,
		Workers:      1,
		KeepOutcomes: true,
	}
}

// Demo runs the demonstration sweep.
func Demo(ctx context.Context, seed int64, logger *zap.Logger) (*Report, error) {
	r, err := NewRunner(DemoParams(seed), logger)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}
