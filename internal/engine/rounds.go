package engine

import "fmt"

// start begins the match: roles are assigned and the first day opens
// immediately, with round 1 and a clean ballot.
func (e *Engine) start(user UserID, room Room) (GameState, error) {
	if user != room.Owner {
		return GameState{}, ErrNotOwner
	}
	if room.State.Status != StatusLobby {
		return GameState{}, ErrNotLobby
	}
	if len(room.State.Players) < e.cfg.MinPlayers {
		return GameState{}, ErrNotEnoughPlayers
	}
	if len(room.State.Players) > room.MaxPlayers {
		return GameState{}, ErrTooManyPlayers
	}

	s := room.State.clone()
	e.assignRoles(s.Players)
	s.Status = StatusStarted
	beginDay(&s)
	s.Storytime = "The hunt begins. The village gathers in the square, eyeing each other with suspicion."
	return s, nil
}

// resolvePhase is run after every successful lockVote. If the lock
// completed the phase it tallies the ballot, checks for a winner and either
// finalizes the game or opens the next phase. Otherwise the state passes
// through untouched.
func resolvePhase(s GameState) GameState {
	switch s.Mode {
	case ModeDaytime:
		if !dayOver(s.Players) {
			return s
		}
		victim := tally(s.Players)
		s.Storytime = dayStory(victim)
		if checkWin(&s) {
			finalize(&s)
			return s
		}
		beginNight(&s)

	case ModeNighttime:
		if !nightOver(s.Players) {
			return s
		}
		victim := tally(s.Players)
		s.Storytime = nightStory(victim)
		if checkWin(&s) {
			finalize(&s)
			return s
		}
		beginDay(&s)
	}
	return s
}

// dayOver reports whether every living player has locked a vote. A player
// who has not cast at all still blocks the day: their vote state is null,
// not Locked.
func dayOver(players []Player) bool {
	for _, p := range players {
		if p.Status == StatusAlive && p.Vote.State != VoteLocked {
			return false
		}
	}
	return true
}

// nightOver only looks at living witches; nobody else acts at night.
func nightOver(players []Player) bool {
	for _, p := range players {
		if p.Status == StatusAlive && p.Role == RoleWitch && p.Vote.State != VoteLocked {
			return false
		}
	}
	return true
}

// beginDay opens a new day: fresh ballot, round counter up. Also used for
// the very first day at game start.
func beginDay(s *GameState) {
	resetVotes(s.Players)
	s.Round++
	s.Mode = ModeDaytime
}

func beginNight(s *GameState) {
	resetVotes(s.Players)
	s.Mode = ModeNighttime
}

func dayStory(victim *Player) string {
	if victim == nil {
		return "The village could not agree. Nobody was burned today."
	}
	return fmt.Sprintf("The village has spoken: %s was burned at the stake.", victim.User)
}

func nightStory(victim *Player) string {
	if victim == nil {
		return "The witches bickered all night. Everyone wakes up unharmed."
	}
	return fmt.Sprintf("%s was taken in the night and never seen again.", victim.User)
}
