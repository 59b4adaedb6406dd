package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core/model"
	"github.com/agenthands/huric/internal/driver"
)

var dbpediaEdges = []model.Edge{
	model.NewEdge("http://dbpedia.org/resource/Paris", "http://dbpedia.org/ontology/City", "type"),
	model.NewEdge("http://dbpedia.org/resource/Paris", "http://dbpedia.org/ontology/City", "type"),
	model.NewEdge("http://dbpedia.org/resource/City", "http://dbpedia.org/resource/Paris", "example"),
}

func newTestHuric(d driver.GraphDriver) *Huric {
	cfg := config.Default()
	cfg.Graph.LocalNames = true
	h := NewHuric(d, nil, nil, cfg)

	counter := 0
	h.UUIDGenerator = func() string {
		counter++
		return fmt.Sprintf("uuid-%d", counter)
	}
	return h
}

func TestPublishGraph(t *testing.T) {
	mockDriver := &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{}}}
	h := newTestHuric(mockDriver)

	entities, err := h.PublishGraph(context.Background(), "group-1", dbpediaEdges)
	require.NoError(t, err)

	assert.Equal(t, []model.Entity{
		{UUID: "uuid-1", Name: "Paris", Color: model.ColorRed},
		{UUID: "uuid-2", Name: "City", Color: model.ColorPurple},
	}, entities)

	saved := mockDriver.queries(driver.SaveEntityQuery)
	require.Len(t, saved, 2)
	assert.Equal(t, "Paris", saved[0].Params["name"])
	assert.Equal(t, "red", saved[0].Params["color"])
	assert.Equal(t, "group-1", saved[0].Params["group_id"])
	assert.Equal(t, "purple", saved[1].Params["color"])

	// the duplicate triple is published once
	relations := mockDriver.queries(driver.SaveRelationQuery)
	require.Len(t, relations, 2)
	assert.Equal(t, "Paris", relations[0].Params["source"])
	assert.Equal(t, "City", relations[0].Params["target"])
	assert.Equal(t, "type", relations[0].Params["label"])
	assert.Equal(t, "example", relations[1].Params["label"])
}

func TestPublishGraphKeepsStoredUUID(t *testing.T) {
	mockDriver := &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{
		{Keys: []string{"uuid"}, Values: []any{"existing"}},
	}}}
	h := newTestHuric(mockDriver)

	entities, err := h.PublishGraph(context.Background(), "g", dbpediaEdges[:1])
	require.NoError(t, err)
	for _, e := range entities {
		assert.Equal(t, "existing", e.UUID)
	}
}

func TestPublishGraphDriverError(t *testing.T) {
	mockDriver := &MockDriver{Err: errors.New("connection reset"), FailOn: driver.SaveRelationQuery}
	h := newTestHuric(mockDriver)

	_, err := h.PublishGraph(context.Background(), "g", dbpediaEdges)
	assert.ErrorContains(t, err, "connection reset")
	assert.ErrorContains(t, err, "failed to save relation")
}

func TestWithoutStore(t *testing.T) {
	h := newTestHuric(nil)
	ctx := context.Background()

	_, err := h.PublishGraph(ctx, "g", dbpediaEdges)
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = h.LoadGraph(ctx, "g")
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, h.DeleteGroup(ctx, "g"), ErrNoStore)

	// building never needs the store
	g := h.BuildGraph(dbpediaEdges)
	assert.Len(t, g.Nodes(), 2)
	assert.Len(t, g.Edges(), 3)
}

func TestLoadGraph(t *testing.T) {
	keys := []string{"source", "source_color", "target", "target_color", "label"}
	mockDriver := &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{
		{Keys: keys, Values: []any{"Paris", "red", "City", "purple", "type"}},
		{Keys: keys, Values: []any{"Paris", "red", "France", nil, "country"}},
	}}}
	h := newTestHuric(mockDriver)

	g, err := h.LoadGraph(context.Background(), "g")
	require.NoError(t, err)
	assert.Equal(t, []model.Entity{
		{Name: "Paris", Color: model.ColorRed},
		{Name: "City", Color: model.ColorPurple},
		{Name: "France", Color: model.ColorBlack},
	}, g.Nodes())
	assert.Equal(t, []model.Edge{
		{Source: "Paris", Target: "City", Label: "type"},
		{Source: "Paris", Target: "France", Label: "country"},
	}, g.Edges())
	assert.Equal(t, "g", mockDriver.Executed[0].Params["group_id"])
}

func TestDeleteGroup(t *testing.T) {
	mockDriver := &MockDriver{}
	h := newTestHuric(mockDriver)

	require.NoError(t, h.DeleteGroup(context.Background(), "g"))
	assert.Len(t, mockDriver.queries(driver.DeleteGroupQuery), 1)
}

func TestCleanerFollowsConfig(t *testing.T) {
	h := NewHuric(nil, nil, nil, config.Default())
	edges := h.NormalizeEdges(dbpediaEdges)
	assert.Len(t, edges, 2)
	assert.Equal(t, "http://dbpedia.org/resource/Paris", edges[0].Source)

	h = newTestHuric(nil)
	edges = h.NormalizeEdges(dbpediaEdges)
	assert.Equal(t, "Paris", edges[0].Source)

	assert.Equal(t, []string{"http://dbpedia.org/resource/City"}, h.Roots(dbpediaEdges))
}
