// Package celf implements the lazy-greedy Cost-Effective Lazy Forward seed
// selection procedure: a Phase-1 parallel initialization of per-node
// marginal-gain estimates followed by a single-threaded Phase-2 greedy loop
// that exploits submodularity to avoid re-evaluating every candidate on
// every iteration (§4.D).
package celf

import (
	"context"
	"errors"

	"github.com/go-graph/maxinfluence/internal/cascade"
	"github.com/go-graph/maxinfluence/internal/graph"
	"github.com/go-graph/maxinfluence/internal/rngstream"
)

// ErrHeapExhausted indicates fewer than k eligible nodes remained
// available when the heap ran dry — not a failure, a degenerate but valid
// outcome (§4.D, §7 "Algorithmic degeneracy").
var ErrHeapExhausted = errors.New("celf: heap exhausted before k seeds selected")

// Selection is one committed CELF pick, in the order it was chosen.
type Selection struct {
	Node               int32
	MarginalGain       float64
	TotalWeightedReach float64
}

// Driver runs CELF seed selection against one graph.
type Driver struct {
	g       *graph.Graph
	est     *cascade.Estimator
	src     rngstream.Source
	workers int
}

// NewDriver builds a Driver. workers bounds Phase-1 parallelism (§4.E) and
// is also handed to the Estimator to bound intra-estimate MC parallelism.
func NewDriver(g *graph.Graph, src rngstream.Source, workers int) *Driver {
	return &Driver{
		g:       g,
		est:     cascade.NewEstimator(g, workers),
		src:     src,
		workers: workers,
	}
}

// Select runs the two-phase CELF procedure and returns up to k seeds in
// selection order, the log record for each commit, and — if the heap ran
// dry before k seeds were found — ErrHeapExhausted alongside the (valid,
// truncated) partial result. Any other returned error is fatal and the
// result should be discarded.
func (d *Driver) Select(ctx context.Context, k, mcRounds int) (*SeedSet, []Selection, error) {
	seedSet := NewSeedSet()
	if k <= 0 {
		return seedSet, nil, nil
	}

	h, err := phase1Init(ctx, d.g, d.est, d.src, mcRounds, d.workers)
	if err != nil {
		return seedSet, nil, err
	}

	var currentVal float64
	selections := make([]Selection, 0, k)

	for iteration := 0; iteration < k; iteration++ {
		if err := ctx.Err(); err != nil {
			return seedSet, selections, err
		}

		committed := false
		for !committed {
			if h.Len() == 0 {
				return seedSet, selections, ErrHeapExhausted
			}
			entry := h.Pop()
			if seedSet.Contains(entry.Node) {
				continue
			}
			if entry.IterationComputed == seedSet.Len() {
				seedSet.Add(entry.Node)
				currentVal += entry.MarginalGain
				selections = append(selections, Selection{
					Node:               entry.Node,
					MarginalGain:       entry.MarginalGain,
					TotalWeightedReach: currentVal,
				})
				committed = true
				continue
			}

			candidateSeeds := seedSet.WithCandidate(entry.Node)
			candidateSrc := d.src.Derive("phase2-candidate", uint64(entry.Node), uint64(seedSet.Len()))
			sigma, err := d.est.Estimate(candidateSeeds, mcRounds, candidateSrc)
			if err != nil {
				return seedSet, selections, err
			}
			h.Push(Entry{
				Node:              entry.Node,
				MarginalGain:      sigma - currentVal,
				IterationComputed: seedSet.Len(),
			})
		}
	}

	return seedSet, selections, nil
}
