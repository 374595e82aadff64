package engine

// join signs a user up for the room, as long as they were not already
// signed up and there is still a free seat.
func (e *Engine) join(user UserID, room Room) (GameState, error) {
	if len(room.State.Players) >= room.MaxPlayers {
		return GameState{}, ErrRoomFull
	}
	if findPlayer(room.State.Players, user) != nil {
		return GameState{}, ErrAlreadySignedUp
	}

	s := room.State.clone()
	s.Players = append(s.Players, NewPlayer(user))
	return s, nil
}

// leave removes a user's sign-up. Once the game is running the seat has to
// survive for round and vote bookkeeping, so the player is marked Dead
// instead of being removed. Owners cannot leave at all; they delete the
// room through the room API instead.
func (e *Engine) leave(user UserID, room Room) (GameState, error) {
	if user == room.Owner {
		return GameState{}, ErrOwnerCannotLeave
	}

	s := room.State.clone()
	if s.Status != StatusLobby {
		if p := findPlayer(s.Players, user); p != nil {
			p.Status = StatusDead
		}
		return s, nil
	}

	players := make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.User != user {
			players = append(players, p)
		}
	}
	s.Players = players
	return s, nil
}
