package domain

import "errors"

// ErrSessionNotFound is returned when a user has no stored session.
var ErrSessionNotFound = errors.New("session not found")

// ErrNodeNotFound is wrapped by graph validation errors for a start node or
// option destination that does not exist.
var ErrNodeNotFound = errors.New("node not found")

// ErrInvalidGraph is returned when a graph definition breaks its invariants
// (duplicate IDs, missing start node, dangling destinations, option keys that
// no normalized message can match).
var ErrInvalidGraph = errors.New("invalid graph")
