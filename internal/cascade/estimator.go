package cascade

import (
	"errors"
	"sync"

	"github.com/go-graph/maxinfluence/internal/atomicx"
	"github.com/go-graph/maxinfluence/internal/graph"
	"github.com/go-graph/maxinfluence/internal/rngstream"
)

// ErrInvalidRounds indicates mcRounds < 1, violating the §4.C contract.
var ErrInvalidRounds = errors.New("cascade: mc_rounds must be >= 1")

// Estimator averages Simulator rollouts against a fixed seed set to produce
// an unbiased Monte Carlo estimate of expected weighted spread (§4.C).
type Estimator struct {
	g       *graph.Graph
	workers int
}

// NewEstimator builds an Estimator over g. workers <= 1 disables
// intra-estimate parallelism; rollouts then run sequentially on one
// Simulator, which is the deterministic, allocation-light default.
func NewEstimator(g *graph.Graph, workers int) *Estimator {
	return &Estimator{g: g, workers: workers}
}

// Estimate returns the arithmetic mean of mcRounds independent Rollout
// calls against seeds, seeding each round's draws from src.ForRound(r) so
// the result is reproducible independent of how rounds are scheduled
// across workers (§4.C determinism contract, §4.F).
func (e *Estimator) Estimate(seeds []int32, mcRounds int, src rngstream.Source) (float64, error) {
	if mcRounds < 1 {
		return 0, ErrInvalidRounds
	}
	if e.workers <= 1 || mcRounds == 1 {
		sim := NewSimulator(e.g)
		var total float64
		for r := 0; r < mcRounds; r++ {
			total += sim.Rollout(seeds, src.ForRound(r))
		}
		return total / float64(mcRounds), nil
	}
	return e.estimateParallel(seeds, mcRounds, src), nil
}

func (e *Estimator) estimateParallel(seeds []int32, mcRounds int, src rngstream.Source) float64 {
	workers := e.workers
	if workers > mcRounds {
		workers = mcRounds
	}
	chunk := (mcRounds + workers - 1) / workers

	var sumBits uint64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > mcRounds {
			end = mcRounds
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			sim := NewSimulator(e.g)
			var local float64
			for r := start; r < end; r++ {
				local += sim.Rollout(seeds, src.ForRound(r))
			}
			atomicx.AddFloat64(&sumBits, local)
		}(start, end)
	}
	wg.Wait()

	total := atomicx.AddFloat64(&sumBits, 0)
	return total / float64(mcRounds)
}
