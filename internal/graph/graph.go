// Package graph implements the immutable, dense-ID graph model consumed by
// the cascade simulator and the CELF driver. Internally the adjacency list
// is a flat CSR-style layout (a single edge array plus a per-node offset
// index), the same compact representation this codebase's graph-algorithm
// packages build from an adjacency list before running BFS over it.
package graph

// Edge is one outgoing influence channel.
type Edge struct {
	To          int32
	Probability float64
}

// Graph is the immutable structure produced by Builder.Finalize. ExternalID,
// Value and Eligible have length N and Offsets has length N+1; edges for
// node i live in Edges[Offsets[i]:Offsets[i+1]].
type Graph struct {
	ExternalID []string
	Offsets    []int32
	Edges      []Edge
	Value      []float64
	Eligible   []bool
}

// N returns the number of internal nodes.
func (g *Graph) N() int {
	return len(g.ExternalID)
}

// Neighbors returns the outgoing edges of internal node id.
func (g *Graph) Neighbors(id int) []Edge {
	return g.Edges[g.Offsets[id]:g.Offsets[id+1]]
}

// EligibleNodes returns the internal ids of every eligible (candidate-seed)
// node, in ascending order.
func (g *Graph) EligibleNodes() []int {
	out := make([]int, 0, len(g.Eligible))
	for i, ok := range g.Eligible {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// TotalValue returns the sum of Value over all nodes, an upper bound on any
// single rollout's weighted spread (§8 IC bounds).
func (g *Graph) TotalValue() float64 {
	var total float64
	for _, v := range g.Value {
		total += v
	}
	return total
}
