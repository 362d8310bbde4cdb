package celf

import (
	"context"
	"sync"

	"github.com/go-graph/maxinfluence/internal/cascade"
	"github.com/go-graph/maxinfluence/internal/graph"
	"github.com/go-graph/maxinfluence/internal/rngstream"
	"github.com/go-graph/maxinfluence/internal/workpool"
)

// phase1Init estimates sigma({i}) for every eligible node, in parallel
// across static chunks of the eligible-node range (§4.E). Each node's RNG
// substream is derived directly from src keyed on the node id alone, so the
// sequence of draws for a given node is independent of which worker it was
// statically chunked to (§4.F thread-count independence). Each worker
// accumulates into a private heap to avoid contention, draining into the
// shared heap under a mutex only at the fork-join barrier. Checks ctx before
// each node; on cancellation it returns the context's error and no heap.
func phase1Init(ctx context.Context, g *graph.Graph, est *cascade.Estimator, src rngstream.Source, mcRounds, workers int) (*Heap, error) {
	eligible := g.EligibleNodes()
	shared := NewHeap()
	if len(eligible) == 0 {
		return shared, nil
	}

	ranges := workpool.Chunks(len(eligible), workers)

	var mu sync.Mutex
	var wg sync.WaitGroup
	errs := make([]error, len(ranges))

	for w, r := range ranges {
		wg.Add(1)
		go func(workerIdx int, r workpool.Range) {
			defer wg.Done()
			local := NewHeap()
			for _, idx := range eligible[r.Start:r.End] {
				if err := ctx.Err(); err != nil {
					errs[workerIdx] = err
					return
				}
				node := int32(idx)
				nodeSrc := src.Derive("phase1-node", uint64(node))
				gain, err := est.Estimate([]int32{node}, mcRounds, nodeSrc)
				if err != nil {
					errs[workerIdx] = err
					return
				}
				local.Push(Entry{Node: node, MarginalGain: gain, IterationComputed: 0})
			}
			mu.Lock()
			shared.Drain(local)
			mu.Unlock()
		}(w, r)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return shared, nil
}
