package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-graph/maxinfluence/internal/celf"
	"github.com/go-graph/maxinfluence/internal/graph"
	"github.com/stretchr/testify/assert"
)

func buildSample() *graph.Graph {
	b := graph.NewBuilder()
	b.SetValue("A", 7)
	b.SetValue("B", 3)
	return b.Finalize()
}

func TestParseProgressAndEligibleCount(t *testing.T) {
	var buf bytes.Buffer
	ParseProgress(&buf, 5)
	EligibleCount(&buf, 2)
	assert.Equal(t, "Parsed graph: 5 internal nodes\nEligible candidate seeds: 2\n", buf.String())
}

func TestSelectionLineFormat(t *testing.T) {
	g := buildSample()
	var buf bytes.Buffer
	Selection(&buf, g, celf.Selection{Node: 0, MarginalGain: 7, TotalWeightedReach: 7})
	assert.Equal(t, "Selected Node A (Val: 7) | Marginal Gain: 7 | Total Weighted Reach: 7\n", buf.String())
}

func TestSummaryFormat(t *testing.T) {
	g := buildSample()
	var buf bytes.Buffer
	Summary(&buf, g, []int32{0, 1}, 1500*time.Millisecond)
	out := buf.String()
	assert.Contains(t, out, "----------------------------------------\n")
	assert.Contains(t, out, "Selected Seeds: A B\n")
	assert.Contains(t, out, "Time: 1.5s\n")
}
