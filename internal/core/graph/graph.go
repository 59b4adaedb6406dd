package graph

import (
	"encoding/json"
	"io"

	"github.com/emicklei/dot"

	"github.com/agenthands/huric/internal/core/model"
)

// GraphName is the Graphviz identifier of rendered graphs.
const GraphName = "dot"

// Graph is an immutable coloured digraph. Accessors return copies.
type Graph struct {
	nodes []model.Entity
	edges []model.Edge
	index map[string]int
}

// New assembles a graph from already resolved entities, e.g. read back from
// the store. Edge endpoints missing from nodes are added as black entities.
func New(nodes []model.Entity, edges []model.Edge) *Graph {
	nodes = append([]model.Entity{}, nodes...)
	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		known[n.Name] = struct{}{}
	}
	for _, e := range edges {
		for _, name := range []string{e.Source, e.Target} {
			if _, ok := known[name]; !ok {
				known[name] = struct{}{}
				nodes = append(nodes, model.Entity{Name: name, Color: model.ColorBlack})
			}
		}
	}
	return newGraph(nodes, append([]model.Edge{}, edges...))
}

func newGraph(nodes []model.Entity, edges []model.Edge) *Graph {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.Name] = i
	}
	return &Graph{nodes: nodes, edges: edges, index: index}
}

// Nodes returns a copy of the nodes in first-seen order.
func (g *Graph) Nodes() []model.Entity {
	return append([]model.Entity(nil), g.nodes...)
}

// Edges returns a copy of the edges in input order.
func (g *Graph) Edges() []model.Edge {
	return append([]model.Edge(nil), g.edges...)
}

// Node looks up an entity by its cleaned name.
func (g *Graph) Node(name string) (model.Entity, bool) {
	i, ok := g.index[name]
	if !ok {
		return model.Entity{}, false
	}
	return g.nodes[i], true
}

// DOT renders the graph in Graphviz format.
func (g *Graph) DOT() string {
	return g.render().String()
}

// WriteDOT writes the DOT rendering to w.
func (g *Graph) WriteDOT(w io.Writer) error {
	_, err := io.WriteString(w, g.DOT())
	return err
}

func (g *Graph) render() *dot.Graph {
	out := dot.NewGraph(dot.Directed)
	out.ID(GraphName)

	for _, n := range g.nodes {
		out.Node(n.Name).Attr("color", string(n.Color))
	}
	for _, e := range g.edges {
		out.Edge(out.Node(e.Source), out.Node(e.Target), e.Label)
	}
	return out
}

type graphJSON struct {
	Nodes []model.Entity `json:"nodes"`
	Edges []model.Edge   `json:"edges"`
}

// MarshalJSON encodes the graph as {"nodes": [...], "edges": [...]}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{Nodes: g.nodes, Edges: g.edges})
}
