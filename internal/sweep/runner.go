// Package sweep estimates the success probability and mean outcome of the
// threshold rule over a range of thresholds by Monte Carlo simulation.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"secretary-simulation/internal/rng"
	"secretary-simulation/internal/secretary"
)

var (
	ErrNoStrategies  = errors.New("sweep: no strategies to simulate")
	ErrInvalidTrials = errors.New("sweep: trials must be positive")
)

// checkEvery is how many trials run between context checks and early-stop
// evaluations.
const checkEvery = 100

// Params configures a sweep.
type Params struct {
	Population int
	Strategies []int
	// Trials is the number of trials per strategy, or the cap when early
	// stopping is enabled.
	Trials int
	// Seed is the base seed; each strategy derives its own stream from it.
	Seed int64
	// Workers is the number of strategies simulated concurrently. Zero means
	// GOMAXPROCS.
	Workers int
	// KeepOutcomes retains the per-trial outcome sequence in each Result.
	KeepOutcomes bool
	// TargetRelStdErr enables early stopping once the relative standard error
	// of both the mean outcome and the success rate falls below it.
	TargetRelStdErr float64
	// MinTrials is the number of trials always run before early stopping is
	// considered.
	MinTrials int
}

// Result holds the statistics of one strategy.
type Result struct {
	Strategy int `json:"strategy"`
	Summary
	// Approx is s/N * ln(N/s).
	Approx float64 `json:"approx"`
	// Exact is the closed-form success probability.
	Exact    float64       `json:"exact"`
	Outcomes []int         `json:"outcomes,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Report is the outcome of a full sweep, in strategy order.
type Report struct {
	RunID      string        `json:"run_id"`
	Population int           `json:"population"`
	Seed       int64         `json:"seed"`
	Results    []Result      `json:"results"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Best returns the result with the highest empirical success rate, ties going
// to the earlier strategy. ok is false for an empty report.
func (r *Report) Best() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	best := r.Results[0]
	for _, res := range r.Results[1:] {
		if res.SuccessRate > best.SuccessRate {
			best = res
		}
	}
	return best, true
}

// Runner runs sweeps. OnResult, when set, is called once per strategy in
// strategy order as soon as that strategy and all before it are done.
type Runner struct {
	params   Params
	logger   *zap.Logger
	OnResult func(Result)
}

// NewRunner validates p, fills in defaults and resolves the seed.
func NewRunner(p Params, logger *zap.Logger) (*Runner, error) {
	if err := secretary.Validate(0, p.Population); err != nil {
		return nil, err
	}
	if len(p.Strategies) == 0 {
		return nil, ErrNoStrategies
	}
	if p.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, p.Trials)
	}
	for _, s := range p.Strategies {
		if err := secretary.Validate(s, p.Population); err != nil {
			return nil, err
		}
	}
	if p.Workers <= 0 {
		p.Workers = runtime.GOMAXPROCS(0)
	}
	if p.MinTrials < 0 {
		p.MinTrials = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p.Seed = rng.Seed(p.Seed)
	p.Strategies = append([]int(nil), p.Strategies...)
	return &Runner{params: p, logger: logger}, nil
}

// Params returns the effective parameters, with the seed and worker count
// resolved.
func (r *Runner) Params() Params {
	return r.params
}

type indexedResult struct {
	seq int
	res Result
}

// Run simulates every strategy and returns the report. Results are identical
// for any worker count given the same seed.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	p := r.params
	start := time.Now()
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID), zap.Int("population", p.Population))

	log.Info("starting sweep",
		zap.Int("strategies", len(p.Strategies)),
		zap.Int("trials", p.Trials),
		zap.Int("workers", p.Workers),
		zap.Int64("seed", p.Seed))
	for _, s := range p.Strategies {
		if s >= p.Population-1 {
			log.Warn("threshold leaves no choice, the last candidate is always taken", zap.Int("strategy", s))
		}
	}

	results := make([]Result, len(p.Strategies))
	resultsCh := make(chan indexedResult, len(p.Strategies))

	// Ordered emitter: buffer out-of-order completions and release them
	// contiguously.
	emitDone := make(chan struct{})
	go func() {
		defer close(emitDone)
		buffer := make(map[int]Result)
		next := 0
		for ir := range resultsCh {
			buffer[ir.seq] = ir.res
			for {
				res, ok := buffer[next]
				if !ok {
					break
				}
				if r.OnResult != nil {
					r.OnResult(res)
				}
				delete(buffer, next)
				next++
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for i, s := range p.Strategies {
		g.Go(func() error {
			res, err := r.runStrategy(gctx, i, s)
			if err != nil {
				return err
			}
			log.Debug("strategy done",
				zap.Int("strategy", s),
				zap.Int("trials", res.Trials),
				zap.Float64("mean", res.Mean),
				zap.Float64("success_rate", res.SuccessRate),
				zap.Duration("elapsed", res.Elapsed))
			results[i] = res
			resultsCh <- indexedResult{seq: i, res: res}
			return nil
		})
	}

	err := g.Wait()
	close(resultsCh)
	<-emitDone
	if err != nil {
		log.Warn("sweep aborted", zap.Error(err))
		return nil, err
	}

	rep := &Report{
		RunID:      runID,
		Population: p.Population,
		Seed:       p.Seed,
		Results:    results,
		Elapsed:    time.Since(start),
	}
	if best, ok := rep.Best(); ok {
		log.Info("sweep complete",
			zap.Int("best_strategy", best.Strategy),
			zap.Float64("best_success_rate", best.SuccessRate),
			zap.Duration("elapsed", rep.Elapsed))
	}
	return rep, nil
}

func (r *Runner) runStrategy(ctx context.Context, seq, s int) (Result, error) {
	p := r.params
	start := time.Now()

	sampler, err := secretary.NewSampler(p.Population, rng.NewFastRNG(rng.Derive(p.Seed, seq)))
	if err != nil {
		return Result{}, err
	}

	target := p.Population - 1
	outcomes := make([]float64, 0, p.Trials)
	var outcomeStats, successStats OnlineStats

	for i := 0; i < p.Trials; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		o := sampler.Sample(s)
		outcomes = append(outcomes, float64(o))
		outcomeStats.Add(float64(o))
		if o == target {
			successStats.Add(1)
		} else {
			successStats.Add(0)
		}

		// Early stopping once both estimates are tight enough.
		if p.TargetRelStdErr > 0 && i >= p.MinTrials && i%checkEvery == 0 &&
			outcomeStats.relStdErrBelow(p.TargetRelStdErr) &&
			successStats.relStdErrBelow(p.TargetRelStdErr) {
			break
		}
	}

	res := Result{
		Strategy: s,
		Summary:  Summarize(outcomes, target),
		Approx:   secretary.Approx(s, p.Population),
		Exact:    secretary.Exact(s, p.Population),
		Elapsed:  time.Since(start),
	}
	if p.KeepOutcomes {
		res.Outcomes = make([]int, len(outcomes))
		for i, o := range outcomes {
			res.Outcomes[i] = int(o)
		}
	}
	return res, nil
}
