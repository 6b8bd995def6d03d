package domain

// Node represents a single menu state in the graph.
type Node struct {
	ID string `json:"id" yaml:"id"`

	// Message is displayed verbatim when the user lands on this node.
	// It may embed markdown, links and emoji.
	Message string `json:"mensaje" yaml:"mensaje"`

	// Options maps an accepted (normalized) input token to a destination node ID.
	// Terminal nodes have no options.
	Options map[string]string `json:"opciones" yaml:"opciones"`
}

// IsTerminal reports whether the node has no outgoing options.
func (n Node) IsTerminal() bool {
	return len(n.Options) == 0
}

// Clone returns a copy of the node that shares no memory with the receiver.
func (n Node) Clone() Node {
	out := n
	out.Options = make(map[string]string, len(n.Options))
	for k, v := range n.Options {
		out.Options[k] = v
	}
	return out
}
