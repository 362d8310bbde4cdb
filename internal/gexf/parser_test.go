package gexf

import (
	"strings"
	"testing"

	"github.com/go-graph/maxinfluence/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0"?>
<gexf>
  <graph defaultedgetype="directed">
    <attributes class="node">
      <attribute id="0" title="influence" type="float"/>
    </attributes>
    <nodes>
      <node id="A" label="Alice">
        <attvalues>
          <attvalue for="0" value="7.5"/>
        </attvalues>
      </node>
      <node id="B" label="Bob"/>
    </nodes>
    <edges>
      <edge source="A" target="B" weight="0.9"/>
      <edge source="B" target="A"/>
    </edges>
  </graph>
</gexf>`

func TestParseResolvesAttributeByTitle(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleDoc), "influence", nil)
	require.NoError(t, err)
	require.Equal(t, 2, g.N())

	idx := indexByExternalID(g, "A")
	assert.True(t, g.Eligible[idx])
	assert.Equal(t, 7.5, g.Value[idx])

	bIdx := indexByExternalID(g, "B")
	assert.False(t, g.Eligible[bIdx])
}

func TestParseEdgeWeightsAndDefault(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleDoc), "influence", nil)
	require.NoError(t, err)

	aIdx := indexByExternalID(g, "A")
	bIdx := indexByExternalID(g, "B")
	require.Len(t, g.Neighbors(aIdx), 1)
	assert.Equal(t, 0.9, g.Neighbors(aIdx)[0].Probability)
	require.Len(t, g.Neighbors(bIdx), 1)
	assert.Equal(t, DefaultProbability, g.Neighbors(bIdx)[0].Probability)
}

func TestParseMissingAttributeDefinitionLeavesNoneEligible(t *testing.T) {
	doc := `<gexf><graph>
      <nodes><node id="A"/></nodes>
      <edges></edges>
    </graph></gexf>`
	g, err := Parse(strings.NewReader(doc), "influence", nil)
	require.NoError(t, err)
	assert.False(t, g.Eligible[0])
}

func TestParseMalformedAttributeValueSkipped(t *testing.T) {
	doc := `<gexf><graph>
      <attributes class="node"><attribute id="0" title="influence"/></attributes>
      <nodes><node id="A"><attvalues><attvalue for="0" value="not-a-number"/></attvalues></node></nodes>
    </graph></gexf>`
	g, err := Parse(strings.NewReader(doc), "influence", nil)
	require.NoError(t, err)
	assert.False(t, g.Eligible[0])
}

func TestParseUnknownElementsIgnored(t *testing.T) {
	doc := `<gexf><meta><creator>someone</creator></meta><graph>
      <nodes><node id="A"/></nodes>
    </graph></gexf>`
	g, err := Parse(strings.NewReader(doc), "influence", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.N())
}

func indexByExternalID(g *graph.Graph, external string) int {
	for i, id := range g.ExternalID {
		if id == external {
			return i
		}
	}
	return -1
}
