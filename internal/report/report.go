// Package report renders the stable textual output contract (§6, §4.H).
// Its line-for-line format is part of the program's external interface, so
// it is written directly with fmt.Fprintf to an io.Writer rather than
// through the structured logger used for diagnostics elsewhere.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-graph/maxinfluence/internal/celf"
	"github.com/go-graph/maxinfluence/internal/graph"
)

// ParseProgress writes the first output line: the count of internal nodes
// produced by ingestion.
func ParseProgress(w io.Writer, nodeCount int) {
	fmt.Fprintf(w, "Parsed graph: %d internal nodes\n", nodeCount)
}

// EligibleCount writes the count of eligible candidate seeds.
func EligibleCount(w io.Writer, count int) {
	fmt.Fprintf(w, "Eligible candidate seeds: %d\n", count)
}

// Phase1Start writes the Phase-1 start notice.
func Phase1Start(w io.Writer) {
	fmt.Fprintln(w, "Phase 1: estimating marginal gains for all eligible nodes")
}

// Selection writes one selected-seed line.
func Selection(w io.Writer, g *graph.Graph, sel celf.Selection) {
	fmt.Fprintf(w, "Selected Node %s (Val: %g) | Marginal Gain: %g | Total Weighted Reach: %g\n",
		g.ExternalID[sel.Node], g.Value[sel.Node], sel.MarginalGain, sel.TotalWeightedReach)
}

// Summary writes the trailing separator, the selected-seeds line, and the
// elapsed-time line, in that order.
func Summary(w io.Writer, g *graph.Graph, seeds []int32, elapsed time.Duration) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprint(w, "Selected Seeds:")
	for _, id := range seeds {
		fmt.Fprintf(w, " %s", g.ExternalID[id])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Time: %gs\n", elapsed.Seconds())
}
