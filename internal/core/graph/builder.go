package graph

import (
	"github.com/agenthands/huric/internal/core/model"
)

// Normalize cleans source and target of every edge, leaving labels untouched,
// and drops duplicate triples. The first occurrence of each triple keeps its
// position. A nil clean is the identity.
func Normalize(edges []model.Edge, clean CleanFunc) []model.Edge {
	clean = orIdentity(clean)

	seen := make(map[model.Edge]struct{}, len(edges))
	out := make([]model.Edge, 0, len(edges))
	for _, e := range edges {
		n := model.Edge{Source: clean(e.Source), Target: clean(e.Target), Label: e.Label}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Build creates the coloured graph for edges. Colours come from the raw
// identifiers, node names from clean(identifier). Every input edge becomes
// exactly one graph edge; Build does not deduplicate (use Normalize first).
func Build(edges []model.Edge, clean CleanFunc) *Graph {
	clean = orIdentity(clean)

	colors := newColorSet()
	out := make([]model.Edge, 0, len(edges))
	for _, e := range edges {
		a, b := clean(e.Source), clean(e.Target)
		colors.add(a, ColorOf(e.Source))
		colors.add(b, ColorOf(e.Target))
		out = append(out, model.Edge{Source: a, Target: b, Label: e.Label})
	}

	nodes := make([]model.Entity, 0, len(colors.order))
	for _, name := range colors.order {
		nodes = append(nodes, model.Entity{Name: name, Color: colors.resolve(name)})
	}
	return newGraph(nodes, out)
}

// Roots returns the raw identifiers that are the source of some edge and the
// target of none, in first-seen order.
func Roots(edges []model.Edge) []string {
	targets := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		targets[e.Target] = struct{}{}
	}

	seen := make(map[string]struct{})
	var roots []string
	for _, e := range edges {
		if _, pointed := targets[e.Source]; pointed {
			continue
		}
		if _, ok := seen[e.Source]; ok {
			continue
		}
		seen[e.Source] = struct{}{}
		roots = append(roots, e.Source)
	}
	return roots
}
