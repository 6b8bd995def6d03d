// Package graph provides the immutable menu graph the bot navigates.
//
// A Graph is built once from a list of nodes, validated, and never mutated
// afterwards, so it is safe for concurrent use without locking.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/input"
)

// Graph is a validated, read-only set of menu nodes.
type Graph struct {
	start string
	nodes map[string]domain.Node
}

// New builds a Graph rooted at start.
// Every destination referenced by an option must exist in nodes, and every
// option key must already be in input.Normalize form, otherwise no message
// could ever select it.
func New(start string, nodes ...domain.Node) (*Graph, error) {
	g := &Graph{
		start: start,
		nodes: make(map[string]domain.Node, len(nodes)),
	}

	var errs []error
	for i, n := range nodes {
		if n.ID == "" {
			errs = append(errs, fmt.Errorf("node #%d has no id", i))
			continue
		}
		if _, dup := g.nodes[n.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate node '%s'", n.ID))
			continue
		}
		g.nodes[n.ID] = n.Clone()
	}

	if _, ok := g.nodes[start]; !ok {
		errs = append(errs, fmt.Errorf("start node '%s': %w", start, domain.ErrNodeNotFound))
	}

	for _, id := range g.ids() {
		n := g.nodes[id]
		seen := make(map[string]string, len(n.Options))
		for _, token := range sortedKeys(n.Options) {
			norm := input.Normalize(token)
			if norm != token {
				errs = append(errs, fmt.Errorf("node '%s' option %q is not normalized (want %q)", id, token, norm))
			}
			if prev, dup := seen[norm]; dup {
				errs = append(errs, fmt.Errorf("node '%s' options %q and %q both match %q", id, prev, token, norm))
			} else {
				seen[norm] = token
			}

			to := n.Options[token]
			if _, ok := g.nodes[to]; !ok {
				errs = append(errs, fmt.Errorf("node '%s' option '%s' points to missing node '%s': %w", id, token, to, domain.ErrNodeNotFound))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidGraph, errors.Join(errs...))
	}
	return g, nil
}

// MustNew is like New but panics on an invalid definition.
// Intended for literal graphs compiled into the binary.
func MustNew(start string, nodes ...domain.Node) *Graph {
	g, err := New(start, nodes...)
	if err != nil {
		panic(err)
	}
	return g
}

// Start returns the ID of the start node.
func (g *Graph) Start() string {
	return g.start
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id string) (domain.Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return domain.Node{}, false
	}
	return n.Clone(), true
}

// MessageFor returns the display text of a node verbatim.
func (g *Graph) MessageFor(id string) (string, bool) {
	n, ok := g.nodes[id]
	return n.Message, ok
}

// Transition matches an already normalized message against the options of
// current. It returns the destination and true on a match, or current and
// false otherwise. Option keys are unique, so match order is irrelevant.
func (g *Graph) Transition(current, normalized string) (string, bool) {
	n, ok := g.nodes[current]
	if !ok {
		return current, false
	}
	if to, ok := n.Options[normalized]; ok {
		return to, true
	}
	return current, false
}

// Nodes returns copies of all nodes, start node first and the rest sorted by id.
func (g *Graph) Nodes() []domain.Node {
	out := make([]domain.Node, 0, len(g.nodes))
	for _, id := range g.ids() {
		out = append(out, g.nodes[id].Clone())
	}
	return out
}

func (g *Graph) ids() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		if id != g.start {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if _, ok := g.nodes[g.start]; ok {
		ids = append([]string{g.start}, ids...)
	}
	return ids
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
