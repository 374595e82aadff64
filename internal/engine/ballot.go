package engine

// eligibleVoter runs the checks shared by castVote and lockVote: the game
// must be active and the acting user must hold a living seat. The pointer
// aims into s.Players, so callers pass a working copy they own.
func eligibleVoter(s GameState, user UserID) (*Player, error) {
	if s.Status != StatusStarted {
		return nil, ErrGameNotActive
	}
	p := findPlayer(s.Players, user)
	if p == nil || p.Status != StatusAlive {
		return nil, ErrIneligibleVoter
	}
	return p, nil
}

// castVote records a provisional vote against a living target. A cast vote
// can still be changed until it is locked. At night only witches may act.
func castVote(user UserID, state GameState, targetID UserID) (GameState, error) {
	s := state.clone()

	voter, err := eligibleVoter(s, user)
	if err != nil {
		return GameState{}, err
	}
	if s.Mode == ModeNighttime && voter.Role != RoleWitch {
		return GameState{}, ErrIneligibleVoter
	}
	if voter.Vote.State == VoteLocked {
		return GameState{}, ErrAlreadyLocked
	}

	target := findPlayer(s.Players, targetID)
	if target == nil || target.Status != StatusAlive || targetID == user {
		return GameState{}, ErrInvalidTarget
	}

	voter.Vote = Vote{Target: targetID, State: VoteCast}
	return s, nil
}

// lockVote turns a cast vote into a final one. Locking is deliberately a
// separate step: only locked votes count toward ending the phase.
func lockVote(user UserID, state GameState) (GameState, error) {
	s := state.clone()

	voter, err := eligibleVoter(s, user)
	if err != nil {
		return GameState{}, err
	}
	if voter.Vote.State != VoteCast {
		return GameState{}, ErrVoteNotCast
	}

	voter.Vote.State = VoteLocked
	return s, nil
}

// tally finds the uniquely most-voted player, marks them Dead and returns
// their seat. A tie between top targets kills nobody. Ties are detected by
// comparing counts, never by vote order. Only living voters count: a seat
// that died mid-round (a leaver) must not sway the ballot.
func tally(players []Player) *Player {
	counts := make(map[UserID]int)
	for _, p := range players {
		if p.Status == StatusAlive && p.Vote.Target != "" {
			counts[p.Vote.Target]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	var victim UserID
	topTargets := 0
	for target, n := range counts {
		if n == max {
			topTargets++
			victim = target
		}
	}
	if topTargets > 1 {
		return nil
	}

	p := findPlayer(players, victim)
	if p == nil {
		return nil
	}
	p.Status = StatusDead
	return p
}
