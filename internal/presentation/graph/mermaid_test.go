package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/minerva/internal/presentation/graph"
	"github.com/aretw0/minerva/pkg/catalog"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		nodes    []domain.Node
		contains []string
	}{
		{
			name:  "Start Node Shape",
			start: "hola",
			nodes: []domain.Node{
				{ID: "hola", Options: map[string]string{"1": "hola"}},
			},
			contains: []string{`hola(("hola"))`},
		},
		{
			name:  "Terminal Node Shape",
			start: "hola",
			nodes: []domain.Node{
				{ID: "hola", Options: map[string]string{"1": "fin"}},
				{ID: "fin"},
			},
			contains: []string{`fin(["fin"])`},
		},
		{
			name:  "Option Edges Grouped By Target",
			start: "a",
			nodes: []domain.Node{
				{ID: "a", Options: map[string]string{"si": "a", "sí": "a", "no": "b"}},
				{ID: "b", Options: map[string]string{"1": "a"}},
			},
			contains: []string{
				`a -- "si / sí" --> a`,
				`a -- "no" --> b`,
				`b["b"]`,
			},
		},
		{
			name:  "ID Sanitization",
			start: "x",
			nodes: []domain.Node{
				{ID: "x", Options: map[string]string{"1": "menu-2.sub"}},
				{ID: "menu-2.sub"},
			},
			contains: []string{
				`x -- "1" --> menu_2_sub`,
				`menu_2_sub(["menu-2.sub"])`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.start, tt.nodes, nil)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := graph.GenerateMermaid(catalog.StartNodeID, catalog.Nodes(), &graph.GraphOverlay{
		CurrentNode: "cajero_info",
	})

	assert.Contains(t, got, "classDef current")
	assert.Equal(t, 1, strings.Count(got, "class cajero_info current;"))

	empty := graph.GenerateMermaid(catalog.StartNodeID, catalog.Nodes(), &graph.GraphOverlay{})
	assert.NotContains(t, empty, "classDef", "an overlay without a current node adds no styles")
}

func TestGenerateMermaid_Catalog(t *testing.T) {
	got := graph.GenerateMermaid(catalog.StartNodeID, catalog.Nodes(), nil)

	assert.Contains(t, got, `inicio(("inicio"))`)
	assert.Contains(t, got, `fin(["fin"])`)
	assert.Contains(t, got, `general -- "no" --> fin`)
	assert.Contains(t, got, `general -- "si / sí" --> inicio`)
	assert.Contains(t, got, `inicio -- "5" --> general`)
}
