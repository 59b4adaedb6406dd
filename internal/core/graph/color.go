package graph

import (
	"strings"

	"github.com/agenthands/huric/internal/core/model"
)

const (
	dbpediaMarker  = "dbpedia.org/"
	resourceMarker = "/resource/"
	ontologyMarker = "/ontology/"
)

// ColorOf classifies a raw identifier.
func ColorOf(id string) model.Color {
	if strings.Contains(id, dbpediaMarker) {
		if strings.Contains(id, resourceMarker) {
			return model.ColorRed
		}
		if strings.Contains(id, ontologyMarker) {
			return model.ColorBlue
		}
	}
	return model.ColorBlack
}

// colorSet accumulates the colours seen for each cleaned name, in first-seen order.
type colorSet struct {
	order  []string
	colors map[string]map[model.Color]struct{}
}

func newColorSet() *colorSet {
	return &colorSet{colors: make(map[string]map[model.Color]struct{})}
}

func (s *colorSet) add(name string, c model.Color) {
	set, ok := s.colors[name]
	if !ok {
		set = make(map[model.Color]struct{}, 1)
		s.colors[name] = set
		s.order = append(s.order, name)
	}
	set[c] = struct{}{}
}

func (s *colorSet) resolve(name string) model.Color {
	set := s.colors[name]
	if len(set) > 1 {
		return model.ColorPurple
	}
	for c := range set {
		return c
	}
	return model.ColorBlack
}
