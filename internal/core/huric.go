package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core/graph"
	"github.com/agenthands/huric/internal/core/language"
	"github.com/agenthands/huric/internal/core/model"
	"github.com/agenthands/huric/internal/core/vocabulary"
	"github.com/agenthands/huric/internal/driver"
)

var ErrNoStore = errors.New("no graph store configured")

// Huric bundles the language utilities, the frame-element vocabulary and the
// graph builder behind one handle. Driver is optional; without it graphs are
// built but not published.
type Huric struct {
	Driver        driver.GraphDriver
	Language      *language.Utils
	Vocabulary    *vocabulary.Vocabulary
	Clean         graph.CleanFunc
	UUIDGenerator func() string
}

func NewHuric(d driver.GraphDriver, lang *language.Utils, vocab *vocabulary.Vocabulary, cfg *config.Config) *Huric {
	clean := graph.Identity
	if cfg != nil && cfg.Graph.LocalNames {
		clean = graph.LocalName
	}
	return &Huric{
		Driver:        d,
		Language:      lang,
		Vocabulary:    vocab,
		Clean:         clean,
		UUIDGenerator: func() string { return uuid.New().String() },
	}
}

func (h *Huric) NormalizeEdges(edges []model.Edge) []model.Edge {
	return graph.Normalize(edges, h.Clean)
}

func (h *Huric) BuildGraph(edges []model.Edge) *graph.Graph {
	return graph.Build(edges, h.Clean)
}

// Roots works on raw identifiers, cleaning is not applied.
func (h *Huric) Roots(edges []model.Edge) []string {
	return graph.Roots(edges)
}

// PublishGraph builds the graph for edges and merges its entities and
// relations into the store under groupID. The returned entities carry the
// uuids the store holds for them.
func (h *Huric) PublishGraph(ctx context.Context, groupID string, edges []model.Edge) ([]model.Entity, error) {
	if h.Driver == nil {
		return nil, ErrNoStore
	}

	g := graph.Build(graph.Normalize(edges, nil), h.Clean)
	now := time.Now().UTC()

	entities := g.Nodes()
	for i, n := range entities {
		params := map[string]interface{}{
			"uuid":       h.UUIDGenerator(),
			"name":       n.Name,
			"group_id":   groupID,
			"color":      string(n.Color),
			"created_at": now,
		}
		res, err := h.Driver.ExecuteQuery(ctx, driver.SaveEntityQuery, params)
		if err != nil {
			return nil, fmt.Errorf("failed to save entity %s: %w", n.Name, err)
		}
		entities[i].UUID = params["uuid"].(string)
		if len(res.Records) > 0 {
			if id, ok := res.Records[0].Get("uuid"); ok {
				if s, ok := id.(string); ok {
					entities[i].UUID = s
				}
			}
		}
	}

	for _, e := range g.Edges() {
		params := map[string]interface{}{
			"uuid":       h.UUIDGenerator(),
			"source":     e.Source,
			"target":     e.Target,
			"label":      e.Label,
			"group_id":   groupID,
			"created_at": now,
		}
		if _, err := h.Driver.ExecuteQuery(ctx, driver.SaveRelationQuery, params); err != nil {
			return nil, fmt.Errorf("failed to save relation %s -[%s]-> %s: %w", e.Source, e.Label, e.Target, err)
		}
	}

	return entities, nil
}

// LoadGraph reads the graph stored under groupID, with the stored colours.
func (h *Huric) LoadGraph(ctx context.Context, groupID string) (*graph.Graph, error) {
	if h.Driver == nil {
		return nil, ErrNoStore
	}

	res, err := h.Driver.ExecuteQuery(ctx, driver.GetGroupGraphQuery, map[string]interface{}{"group_id": groupID})
	if err != nil {
		return nil, fmt.Errorf("failed to load graph %s: %w", groupID, err)
	}

	var nodes []model.Entity
	seen := make(map[string]struct{})
	addNode := func(name, color interface{}) {
		n := asString(name)
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		c := model.Color(asString(color))
		if c == "" {
			c = model.ColorBlack
		}
		nodes = append(nodes, model.Entity{Name: n, Color: c})
	}

	edges := make([]model.Edge, 0, len(res.Records))
	for _, rec := range res.Records {
		source, _ := rec.Get("source")
		target, _ := rec.Get("target")
		label, _ := rec.Get("label")
		sourceColor, _ := rec.Get("source_color")
		targetColor, _ := rec.Get("target_color")

		addNode(source, sourceColor)
		addNode(target, targetColor)
		edges = append(edges, model.Edge{
			Source: asString(source),
			Target: asString(target),
			Label:  asString(label),
		})
	}
	return graph.New(nodes, edges), nil
}

func (h *Huric) DeleteGroup(ctx context.Context, groupID string) error {
	if h.Driver == nil {
		return ErrNoStore
	}
	_, err := h.Driver.ExecuteQuery(ctx, driver.DeleteGroupQuery, map[string]interface{}{"group_id": groupID})
	return err
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
