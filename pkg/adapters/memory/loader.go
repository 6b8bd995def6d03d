package memory

import (
	"fmt"

	"github.com/aretw0/minerva/pkg/catalog"
	"github.com/aretw0/minerva/pkg/domain"
)

// Loader implements ports.GraphLoader over nodes defined in code.
type Loader struct {
	start string
	nodes []domain.Node
}

// NewLoader creates a Loader for the given nodes rooted at start.
func NewLoader(start string, nodes ...domain.Node) (*Loader, error) {
	if start == "" {
		return nil, fmt.Errorf("start node is required")
	}
	cp := make([]domain.Node, len(nodes))
	for i, n := range nodes {
		cp[i] = n.Clone()
	}
	return &Loader{start: start, nodes: cp}, nil
}

// NewCatalogLoader returns a Loader serving the built-in Minerva menu.
func NewCatalogLoader() *Loader {
	return &Loader{start: catalog.StartNodeID, nodes: catalog.Nodes()}
}

// LoadNodes returns copies of the configured nodes.
func (l *Loader) LoadNodes() ([]domain.Node, error) {
	out := make([]domain.Node, len(l.nodes))
	for i, n := range l.nodes {
		out[i] = n.Clone()
	}
	return out, nil
}

// StartNodeID returns the configured start node.
func (l *Loader) StartNodeID() string {
	return l.start
}
