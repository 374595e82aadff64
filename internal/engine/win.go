package engine

// checkWin reports whether one team has been wiped out, recording the
// surviving team in s.Winners. An empty set of living players declares no
// winner; the engine fails closed rather than guess.
func checkWin(s *GameState) bool {
	var villagers, witches int
	for _, p := range s.Players {
		if p.Status != StatusAlive {
			continue
		}
		if p.Team == TeamWitches {
			witches++
		} else {
			villagers++
		}
	}

	switch {
	case villagers+witches == 0:
		return false
	case villagers == 0:
		s.Winners = TeamWitches
		return true
	case witches == 0:
		s.Winners = TeamVillagers
		return true
	}
	return false
}

// finalize closes the match. The activity checks on every vote action
// already reject anything after this, so no extra terminal guard is needed.
func finalize(s *GameState) {
	s.Status = StatusCompleted
}
