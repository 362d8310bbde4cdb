package graph

// Builder accumulates nodes and edges under caller-supplied opaque external
// ids and flattens them into a Graph's CSR layout on Finalize, mirroring
// the offset/flatten pair this codebase uses elsewhere to convert between
// adjacency-list and CSR graph representations.
type Builder struct {
	index      map[string]int32
	externalID []string
	adj        [][]Edge
	value      []float64
	eligible   []bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int32)}
}

// DefaultProbability is used by AddEdge when the source supplies none.
const DefaultProbability = 0.1

// Intern assigns externalID its internal id on first sight and returns the
// (possibly pre-existing) internal id. Idempotent.
func (b *Builder) Intern(externalID string) int32 {
	if id, ok := b.index[externalID]; ok {
		return id
	}
	id := int32(len(b.externalID))
	b.index[externalID] = id
	b.externalID = append(b.externalID, externalID)
	b.adj = append(b.adj, nil)
	b.value = append(b.value, 0)
	b.eligible = append(b.eligible, false)
	return id
}

// AddEdge interns both endpoints and appends a directed edge src->dst with
// the given probability, clamped to [0,1]. probability < 0 is treated as
// "not supplied" and defaulted to DefaultProbability, matching the GEXF
// ingestion contract (§4.G) where a missing weight defaults to 0.1.
func (b *Builder) AddEdge(srcExternal, dstExternal string, probability float64) {
	if probability < 0 {
		probability = DefaultProbability
	}
	if probability > 1 {
		probability = 1
	}
	src := b.Intern(srcExternal)
	dst := b.Intern(dstExternal)
	b.adj[src] = append(b.adj[src], Edge{To: dst, Probability: probability})
}

// SetValue interns externalID, records its value, and marks it eligible —
// only nodes that reach SetValue may be selected as CELF seeds.
func (b *Builder) SetValue(externalID string, value float64) {
	if value < 0 {
		value = 0
	}
	id := b.Intern(externalID)
	b.value[id] = value
	b.eligible[id] = true
}

// N reports how many distinct nodes have been interned so far.
func (b *Builder) N() int {
	return len(b.externalID)
}

// Finalize flattens the accumulated adjacency lists into the immutable CSR
// layout and returns the resulting Graph. The Builder remains usable
// afterward but further mutation has no effect on previously finalized
// Graphs.
func (b *Builder) Finalize() *Graph {
	n := len(b.externalID)
	offsets := make([]int32, n+1)
	var total int32
	for i, edges := range b.adj {
		offsets[i] = total
		total += int32(len(edges))
	}
	offsets[n] = total

	edges := make([]Edge, 0, total)
	for _, es := range b.adj {
		edges = append(edges, es...)
	}

	return &Graph{
		ExternalID: append([]string(nil), b.externalID...),
		Offsets:    offsets,
		Edges:      edges,
		Value:      append([]float64(nil), b.value...),
		Eligible:   append([]bool(nil), b.eligible...),
	}
}
