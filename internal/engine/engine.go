package engine

import (
	"math/rand"
	"time"
)

type Action string

const (
	ActionJoin     Action = "join"
	ActionLeave    Action = "leave"
	ActionCastVote Action = "castVote"
	ActionLockVote Action = "lockVote"
	ActionStart    Action = "start"
)

// Config carries the game constants that used to live as module globals in
// older revisions. Passed in explicitly so tests can tighten the bounds.
type Config struct {
	MinPlayers int
	MaxPlayers int
}

func DefaultConfig() Config {
	return Config{MinPlayers: 3, MaxPlayers: 25}
}

// Engine is the pure rules engine. It holds no per-room state; the only
// thing it owns is the randomness source for role assignment.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config) *Engine {
	return NewWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand injects the randomness source, which tests use to make role
// assignment reproducible.
func NewWithRand(cfg Config, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// TakeAction validates and applies one player action against a room
// snapshot and returns the resulting state, or a *Rejection error and no
// state change. join/leave/start return directly; castVote applies the vote
// and returns; only a successful lockVote can end the current phase, so
// only lockVote runs the tally / win / next-phase sequence.
func (e *Engine) TakeAction(user UserID, action Action, room Room, parameters []UserID) (GameState, error) {
	switch action {
	case ActionJoin:
		return e.join(user, room)

	case ActionLeave:
		return e.leave(user, room)

	case ActionStart:
		return e.start(user, room)

	case ActionCastVote:
		if len(parameters) != 1 {
			return GameState{}, ErrInvalidTarget
		}
		return castVote(user, room.State, parameters[0])

	case ActionLockVote:
		s, err := lockVote(user, room.State)
		if err != nil {
			return GameState{}, err
		}
		return resolvePhase(s), nil

	default:
		return GameState{}, ErrUnknownAction
	}
}
