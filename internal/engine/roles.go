package engine

// witchCount grows with the roster: 1 witch up to 6 players, then one more
// for every 4 additional players.
func witchCount(n int) int {
	return (n-3)/4 + 1
}

// assignRoles performs the one-time hidden role assignment at game start.
// Draws happen from a shrinking candidate list, so a player can never be
// picked twice: witches are disjoint, and the girl is always one of the
// remaining villagers.
func (e *Engine) assignRoles(players []Player) {
	candidates := make([]int, len(players))
	for i := range candidates {
		candidates[i] = i
	}
	draw := func() int {
		j := e.rng.Intn(len(candidates))
		idx := candidates[j]
		candidates = append(candidates[:j], candidates[j+1:]...)
		return idx
	}

	for w := witchCount(len(players)); w > 0; w-- {
		i := draw()
		players[i].Role = RoleWitch
		players[i].Team = TeamWitches
	}

	// The girl stays on the villager team; her role only matters to the
	// narrative and to future role abilities.
	if len(candidates) > 0 {
		players[draw()].Role = RoleGirl
	}
}
