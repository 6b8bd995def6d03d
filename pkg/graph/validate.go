package graph

import "sort"

// Unreachable returns the IDs of nodes that cannot be reached from the start
// node, sorted. Unreachable nodes are legal but usually an authoring mistake.
func (g *Graph) Unreachable() []string {
	visited := make(map[string]bool, len(g.nodes))
	queue := []string{g.start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, to := range g.nodes[current].Options {
			if !visited[to] {
				queue = append(queue, to)
			}
		}
	}

	var orphans []string
	for id := range g.nodes {
		if !visited[id] {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	return orphans
}

// Terminals returns the IDs of nodes without options, sorted.
func (g *Graph) Terminals() []string {
	var out []string
	for id, n := range g.nodes {
		if n.IsTerminal() {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
