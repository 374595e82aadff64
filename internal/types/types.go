package types

import "github.com/witchhunt-game/backend/internal/engine"

// ClientMessage is one game action from a connected player. Parameters is
// action-specific: castVote takes exactly one target identity, everything
// else ignores it.
type ClientMessage struct {
	Action     string   `json:"action"`
	Parameters []string `json:"parameters,omitempty"`
}

// ServerMessage is either a versioned state snapshot fanned out to the
// whole room or an error addressed to the acting client.
type ServerMessage struct {
	Type    string            `json:"type"` // "StateSnapshot" | "Error"
	Version int               `json:"version,omitempty"`
	State   *engine.GameState `json:"state,omitempty"`
	Code    string            `json:"code,omitempty"`
	Error   string            `json:"error,omitempty"`
}
