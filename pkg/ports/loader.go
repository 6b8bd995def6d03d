package ports

import "github.com/aretw0/minerva/pkg/domain"

// GraphLoader defines how the bot retrieves the menu definition.
// It is called once at startup; the resulting graph is never reloaded.
type GraphLoader interface {
	// LoadNodes returns every node of the menu.
	LoadNodes() ([]domain.Node, error)

	// StartNodeID returns the node new users are positioned at.
	StartNodeID() string
}
