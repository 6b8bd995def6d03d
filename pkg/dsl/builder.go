package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/minerva/pkg/adapters/memory"
	"github.com/aretw0/minerva/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	start string
	order []string
	nodes map[string]*NodeBuilder
	errs  []error
}

// New creates a new graph builder rooted at start.
func New(start string) *Builder {
	return &Builder{
		start: start,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.Node{
			ID:      id,
			Options: make(map[string]string),
		},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build compiles the graph into a memory Loader, in the order nodes were added.
// Links are checked later, when the loader's graph is built.
func (b *Builder) Build() (*memory.Loader, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid menu definition: %w", errors.Join(b.errs...))
	}

	nodes := make([]domain.Node, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, b.nodes[id].node)
	}

	loader, err := memory.NewLoader(b.start, nodes...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}
