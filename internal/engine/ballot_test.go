package engine

import (
	"errors"
	"testing"
)

func startedWith(users ...UserID) GameState {
	s := lobbyWith(users...)
	s.Status = StatusStarted
	s.Mode = ModeDaytime
	s.Round = 1
	return s
}

func makeWitch(s *GameState, user UserID) {
	p := findPlayer(s.Players, user)
	p.Role = RoleWitch
	p.Team = TeamWitches
}

func TestCastVoteValidation(t *testing.T) {
	night := startedWith("alice", "bob", "carol")
	night.Mode = ModeNighttime
	makeWitch(&night, "carol")

	locked := startedWith("alice", "bob", "carol")
	findPlayer(locked.Players, "alice").Vote = Vote{Target: "bob", State: VoteLocked}

	dead := startedWith("alice", "bob", "carol")
	findPlayer(dead.Players, "bob").Status = StatusDead

	cases := []struct {
		name    string
		state   GameState
		user    UserID
		target  UserID
		wantErr error
	}{
		{
			name:    "rejects votes while in the lobby",
			state:   lobbyWith("alice", "bob", "carol"),
			user:    "alice",
			target:  "bob",
			wantErr: ErrGameNotActive,
		},
		{
			name:    "rejects a voter who is not signed up",
			state:   startedWith("alice", "bob", "carol"),
			user:    "mallory",
			target:  "bob",
			wantErr: ErrIneligibleVoter,
		},
		{
			name:    "rejects a dead voter",
			state:   dead,
			user:    "bob",
			target:  "alice",
			wantErr: ErrIneligibleVoter,
		},
		{
			name:    "rejects non-witches at night",
			state:   night,
			user:    "alice",
			target:  "bob",
			wantErr: ErrIneligibleVoter,
		},
		{
			name:   "allows witches at night",
			state:  night,
			user:   "carol",
			target: "bob",
		},
		{
			name:    "rejects changing a locked vote",
			state:   locked,
			user:    "alice",
			target:  "carol",
			wantErr: ErrAlreadyLocked,
		},
		{
			name:    "rejects voting for yourself",
			state:   startedWith("alice", "bob", "carol"),
			user:    "alice",
			target:  "alice",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "rejects a dead target",
			state:   dead,
			user:    "alice",
			target:  "bob",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "rejects an unknown target",
			state:   startedWith("alice", "bob", "carol"),
			user:    "alice",
			target:  "mallory",
			wantErr: ErrInvalidTarget,
		},
		{
			name:   "records a valid vote",
			state:  startedWith("alice", "bob", "carol"),
			user:   "alice",
			target: "bob",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := castVote(tc.user, tc.state, tc.target)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			got := findPlayer(s.Players, tc.user).Vote
			if got.Target != tc.target || got.State != VoteCast {
				t.Fatalf("vote not recorded, got %+v", got)
			}
		})
	}
}

func TestCastVoteCanBeChangedBeforeLocking(t *testing.T) {
	s := startedWith("alice", "bob", "carol")

	s, err := castVote("alice", s, "bob")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s, err = castVote("alice", s, "carol")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := findPlayer(s.Players, "alice").Vote.Target; got != "carol" {
		t.Fatalf("got target %q, want carol", got)
	}
}

func TestLockVote(t *testing.T) {
	t.Run("rejects locking before casting", func(t *testing.T) {
		_, err := lockVote("alice", startedWith("alice", "bob", "carol"))
		if !errors.Is(err, ErrVoteNotCast) {
			t.Fatalf("want ErrVoteNotCast, got %v", err)
		}
	})

	t.Run("locks a cast vote", func(t *testing.T) {
		s := startedWith("alice", "bob", "carol")
		s, err := castVote("alice", s, "bob")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		s, err = lockVote("alice", s)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got := findPlayer(s.Players, "alice").Vote.State; got != VoteLocked {
			t.Fatalf("got vote state %q, want Locked", got)
		}
	})
}

func TestTally(t *testing.T) {
	vote := func(s *GameState, voter, target UserID) {
		findPlayer(s.Players, voter).Vote = Vote{Target: target, State: VoteLocked}
	}

	t.Run("unique maximum kills the target", func(t *testing.T) {
		s := startedWith("alice", "bob", "carol")
		vote(&s, "alice", "carol")
		vote(&s, "bob", "carol")
		vote(&s, "carol", "alice")

		victim := tally(s.Players)
		if victim == nil || victim.User != "carol" {
			t.Fatalf("want carol dead, got %+v", victim)
		}
		if findPlayer(s.Players, "carol").Status != StatusDead {
			t.Fatalf("carol should be dead")
		}
	})

	t.Run("tie kills nobody", func(t *testing.T) {
		s := startedWith("alice", "bob", "carol", "dave")
		vote(&s, "alice", "bob")
		vote(&s, "bob", "alice")
		vote(&s, "carol", "bob")
		vote(&s, "dave", "alice")

		if victim := tally(s.Players); victim != nil {
			t.Fatalf("tie should kill nobody, got %+v", victim)
		}
		for _, p := range s.Players {
			if p.Status != StatusAlive {
				t.Fatalf("%s died on a tie", p.User)
			}
		}
	})

	t.Run("no votes kills nobody", func(t *testing.T) {
		s := startedWith("alice", "bob", "carol")
		if victim := tally(s.Players); victim != nil {
			t.Fatalf("want nil, got %+v", victim)
		}
	})
}
