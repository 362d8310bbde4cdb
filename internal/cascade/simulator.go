// Package cascade implements the Independent Cascade diffusion model: a
// single stochastic rollout (Simulator) and the Monte Carlo mean over many
// rollouts (Estimator). The propagation loop is a plain multi-source FIFO
// BFS, the same queue-of-(vertex) traversal this codebase's sequential BFS
// routines use, generalized here to draw a per-edge Bernoulli trial before
// an edge may activate its target.
package cascade

import (
	"math/rand/v2"

	"github.com/go-graph/maxinfluence/internal/graph"
)

// Simulator runs single Independent Cascade rollouts against one graph,
// reusing a per-rollout epoch-token vector across calls so that resetting
// the activation set between rollouts is amortized O(1) rather than an
// O(N) clear (§4.B, §9 "epoch-token scheme").
type Simulator struct {
	g        *graph.Graph
	lastSeen []uint64
	token    uint64
	queue    []int32
}

// NewSimulator allocates the epoch-token vector once for g and returns a
// Simulator ready for repeated rollouts.
func NewSimulator(g *graph.Graph) *Simulator {
	return &Simulator{
		g:        g,
		lastSeen: make([]uint64, g.N()),
		queue:    make([]int32, 0, g.N()),
	}
}

// nextEpoch advances the token, resetting lastSeen on wraparound as
// mandated by §4.B.
func (s *Simulator) nextEpoch() uint64 {
	s.token++
	if s.token == 0 {
		for i := range s.lastSeen {
			s.lastSeen[i] = 0
		}
		s.token = 1
	}
	return s.token
}

func (s *Simulator) activated(v int32, token uint64) bool {
	return s.lastSeen[v] == token
}

func (s *Simulator) activate(v int32, token uint64) {
	s.lastSeen[v] = token
}

// Rollout runs one stochastic cascade from seeds and returns the total
// value of every node activated, including the seeds themselves (§4.B).
// seeds are deduplicated; duplicate parallel edges each draw an
// independent Bernoulli trial.
func (s *Simulator) Rollout(seeds []int32, rng *rand.Rand) float64 {
	token := s.nextEpoch()
	s.queue = s.queue[:0]

	var total float64
	for _, seed := range seeds {
		if s.activated(seed, token) {
			continue
		}
		s.activate(seed, token)
		total += s.g.Value[seed]
		s.queue = append(s.queue, seed)
	}

	for head := 0; head < len(s.queue); head++ {
		u := s.queue[head]
		for _, e := range s.g.Neighbors(int(u)) {
			if s.activated(e.To, token) {
				continue
			}
			if rng.Float64() <= e.Probability {
				s.activate(e.To, token)
				total += s.g.Value[e.To]
				s.queue = append(s.queue, e.To)
			}
		}
	}
	return total
}
