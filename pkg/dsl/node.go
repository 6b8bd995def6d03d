package dsl

import (
	"fmt"

	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/input"
)

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Say sets the message shown when a user arrives at the node.
func (n *NodeBuilder) Say(message string) *NodeBuilder {
	n.node.Message = message
	return n
}

// On adds an option: typing key moves the user to the node to.
// Redefining a key replaces its target.
func (n *NodeBuilder) On(key, to string) *NodeBuilder {
	normalized := input.Normalize(key)
	if normalized == "" {
		n.builder.errs = append(n.builder.errs, fmt.Errorf("node '%s' has an empty option key", n.node.ID))
		return n
	}
	n.node.Options[normalized] = to
	return n
}

// Yes adds the affirmative answers "sí" and "si".
func (n *NodeBuilder) Yes(to string) *NodeBuilder {
	return n.On("sí", to).On("si", to)
}

// No adds the negative answer "no".
func (n *NodeBuilder) No(to string) *NodeBuilder {
	return n.On("no", to)
}

// Node returns a copy of the node as configured so far.
func (n *NodeBuilder) Node() domain.Node {
	return n.node.Clone()
}
