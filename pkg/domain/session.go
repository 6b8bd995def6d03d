package domain

import "time"

// Session associates a user with the node they are currently positioned at.
type Session struct {
	UserID    string    `json:"user_id"`
	NodeID    string    `json:"node_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reply is the outcome of processing one user message.
type Reply struct {
	// State is the resulting (or unchanged) node ID.
	State string `json:"estado"`
	// Response is the text to display to the user.
	Response string `json:"respuesta"`
	// Matched reports whether the message selected a valid option.
	Matched bool `json:"-"`
}
