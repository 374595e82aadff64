package engine

import "testing"

func TestCheckWin(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(*GameState)
		wantWin bool
		winners Team
	}{
		{
			name:  "mixed teams alive means no winner",
			setup: func(s *GameState) { makeWitch(s, "alice") },
		},
		{
			name: "only witches left",
			setup: func(s *GameState) {
				makeWitch(s, "alice")
				findPlayer(s.Players, "bob").Status = StatusDead
				findPlayer(s.Players, "carol").Status = StatusDead
			},
			wantWin: true,
			winners: TeamWitches,
		},
		{
			name: "only villagers left",
			setup: func(s *GameState) {
				makeWitch(s, "alice")
				findPlayer(s.Players, "alice").Status = StatusDead
			},
			wantWin: true,
			winners: TeamVillagers,
		},
		{
			name: "nobody alive fails closed",
			setup: func(s *GameState) {
				for i := range s.Players {
					s.Players[i].Status = StatusDead
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := startedWith("alice", "bob", "carol")
			tc.setup(&s)

			got := checkWin(&s)
			if got != tc.wantWin {
				t.Fatalf("checkWin = %v, want %v", got, tc.wantWin)
			}
			if s.Winners != tc.winners {
				t.Fatalf("winners = %q, want %q", s.Winners, tc.winners)
			}
		})
	}
}
