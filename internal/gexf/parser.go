// Package gexf is the out-of-core collaborator at the boundary described by
// §4.G: a permissive, best-effort reader of a graph-exchange XML document
// that feeds a graph.Builder. It is not a strict GEXF-schema validator —
// unknown elements are ignored, malformed numeric values are skipped with a
// warning, and a missing attribute definition leaves every node ineligible
// rather than failing the run.
package gexf

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/go-graph/maxinfluence/internal/graph"
)

type attributeDef struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
}

type attValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type node struct {
	ID        string     `xml:"id,attr"`
	AttValues []attValue `xml:"attvalues>attvalue"`
}

type edge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Weight string `xml:"weight,attr"`
}

// DefaultProbability is the edge probability used when a <edge> element
// supplies no weight attribute (§4.G).
const DefaultProbability = graph.DefaultProbability

// Parse reads a GEXF-like XML document from r and builds a Graph, resolving
// node values against the attribute definition whose title matches
// attributeName. Diagnostics (missing attribute definition, malformed
// numeric values) are logged at WARN on logger rather than failing the
// parse; logger may be nil, in which case diagnostics are discarded.
func Parse(r io.Reader, attributeName string, logger *slog.Logger) (*graph.Graph, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := graph.NewBuilder()
	dec := xml.NewDecoder(r)

	var targetAttrID string
	var foundAttrDef bool

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gexf: decode: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "attribute":
			var def attributeDef
			if err := dec.DecodeElement(&def, &start); err != nil {
				return nil, fmt.Errorf("gexf: decode attribute: %w", err)
			}
			if def.Title == attributeName {
				targetAttrID = def.ID
				foundAttrDef = true
			}
		case "node":
			var n node
			if err := dec.DecodeElement(&n, &start); err != nil {
				return nil, fmt.Errorf("gexf: decode node: %w", err)
			}
			handleNode(b, n, targetAttrID, foundAttrDef, logger)
		case "edge":
			var e edge
			if err := dec.DecodeElement(&e, &start); err != nil {
				return nil, fmt.Errorf("gexf: decode edge: %w", err)
			}
			handleEdge(b, e, logger)
		}
	}

	if !foundAttrDef {
		logger.Warn("attribute definition not found; no nodes will be eligible", "attribute", attributeName)
	}

	return b.Finalize(), nil
}

func handleNode(b *graph.Builder, n node, targetAttrID string, foundAttrDef bool, logger *slog.Logger) {
	b.Intern(n.ID)
	if !foundAttrDef {
		return
	}
	for _, av := range n.AttValues {
		if av.For != targetAttrID {
			continue
		}
		value, err := strconv.ParseFloat(av.Value, 64)
		if err != nil {
			logger.Warn("skipping malformed attribute value", "node", n.ID, "value", av.Value)
			continue
		}
		b.SetValue(n.ID, value)
	}
}

func handleEdge(b *graph.Builder, e edge, logger *slog.Logger) {
	probability := -1.0 // sentinel meaning "not supplied"; Builder defaults it
	if e.Weight != "" {
		w, err := strconv.ParseFloat(e.Weight, 64)
		if err != nil {
			logger.Warn("skipping malformed edge weight, using default", "source", e.Source, "target", e.Target, "weight", e.Weight)
		} else {
			probability = w
		}
	}
	b.AddEdge(e.Source, e.Target, probability)
}
