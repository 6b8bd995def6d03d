package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/minerva/pkg/domain"
)

// GraphOverlay marks the node a user's session currently points at.
// Sessions keep no history, so there is nothing else to highlight.
type GraphOverlay struct {
	CurrentNode string
}

// GenerateMermaid produces a Mermaid flowchart from a list of menu nodes.
// Shapes:
// - Start: ((Circle))
// - Terminal (no options): ([Stadium])
// - Default: [Rectangle]
// Options leading to the same node share one edge labelled with every key.
func GenerateMermaid(start string, nodes []domain.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == start:
			opener, closer = "((", "))"
		case node.IsTerminal():
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, node.ID, closer)

		for _, edge := range groupOptions(node.Options) {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, edge.label, sanitizeMermaidID(edge.to))
		}
	}

	if overlay != nil && overlay.CurrentNode != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
	}

	return sb.String()
}

type edge struct {
	to    string
	label string
}

// groupOptions merges option keys by target, ordered by target id.
func groupOptions(options map[string]string) []edge {
	byTarget := make(map[string][]string)
	for key, to := range options {
		byTarget[to] = append(byTarget[to], strings.ReplaceAll(key, "\"", "'"))
	}

	edges := make([]edge, 0, len(byTarget))
	for to, keys := range byTarget {
		sort.Strings(keys)
		edges = append(edges, edge{to: to, label: strings.Join(keys, " / ")})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].to < edges[j].to })
	return edges
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
