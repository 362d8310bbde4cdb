package celf

import "container/heap"

// Entry is a lazily-evaluated CELF candidate: the marginal gain last
// computed for Node, and the SeedSet size at which it was computed. An
// Entry is fresh iff IterationComputed equals the current SeedSet size;
// otherwise it must be recomputed before it can be trusted (§3, §9 — this
// staleness stamp is the algorithmic content of CELF and must not be
// dropped in favor of a plain (node, gain) priority queue).
type Entry struct {
	Node              int32
	MarginalGain      float64
	IterationComputed int
}

// entryHeap is a container/heap.Interface max-heap over Entry, ordered by
// MarginalGain with ties broken toward the smaller Node id for
// reproducible runs under a fixed RNG seed (§3 "Ordering").
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].MarginalGain != h[j].MarginalGain {
		return h[i].MarginalGain > h[j].MarginalGain
	}
	return h[i].Node < h[j].Node
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(Entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Heap wraps container/heap's free functions behind the push/pop vocabulary
// the CELF driver and Phase-1 scheduler both use.
type Heap struct {
	h entryHeap
}

// NewHeap returns an empty max-heap of Entry.
func NewHeap() *Heap {
	h := &Heap{}
	heap.Init(&h.h)
	return h
}

// Len reports the number of entries currently in the heap.
func (hp *Heap) Len() int { return hp.h.Len() }

// Push adds e to the heap.
func (hp *Heap) Push(e Entry) { heap.Push(&hp.h, e) }

// Pop removes and returns the entry with the largest MarginalGain (ties
// toward smaller Node). Panics if the heap is empty, matching
// container/heap's own contract.
func (hp *Heap) Pop() Entry { return heap.Pop(&hp.h).(Entry) }

// Drain pops every entry from other and pushes it into hp, used at the
// Phase-1 fork-join barrier to merge a worker's private heap into the
// shared heap (§4.E).
func (hp *Heap) Drain(other *Heap) {
	for other.Len() > 0 {
		hp.Push(other.Pop())
	}
}
