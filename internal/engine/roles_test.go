package engine

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestWitchCount(t *testing.T) {
	cases := []struct {
		players int
		want    int
	}{
		{3, 1},
		{6, 1},
		{7, 2},
		{10, 2},
		{11, 3},
		{25, 6},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d players", tc.players), func(t *testing.T) {
			if got := witchCount(tc.players); got != tc.want {
				t.Fatalf("witchCount(%d) = %d, want %d", tc.players, got, tc.want)
			}
		})
	}
}

func TestAssignRolesIsDisjointAcrossSeeds(t *testing.T) {
	users := []UserID{"a", "b", "c", "d", "e", "f", "g", "h"}

	for seed := int64(0); seed < 100; seed++ {
		e := NewWithRand(Config{MinPlayers: 3, MaxPlayers: 25}, rand.New(rand.NewSource(seed)))
		s := lobbyWith(users...)
		e.assignRoles(s.Players)

		witches, girls := 0, 0
		for _, p := range s.Players {
			switch p.Role {
			case RoleWitch:
				witches++
				if p.Team != TeamWitches {
					t.Fatalf("seed %d: witch %s on team %s", seed, p.User, p.Team)
				}
			case RoleGirl:
				girls++
				if p.Team != TeamVillagers {
					t.Fatalf("seed %d: girl %s on team %s", seed, p.User, p.Team)
				}
			case RoleVillager:
				if p.Team != TeamVillagers {
					t.Fatalf("seed %d: villager %s on team %s", seed, p.User, p.Team)
				}
			}
		}
		if want := witchCount(len(users)); witches != want {
			t.Fatalf("seed %d: got %d witches, want %d", seed, witches, want)
		}
		if girls != 1 {
			t.Fatalf("seed %d: got %d girls, want 1", seed, girls)
		}
	}
}

func TestAssignRolesReachesEverySeat(t *testing.T) {
	users := []UserID{"a", "b", "c", "d", "e"}
	witchSeen := make(map[UserID]bool)

	for seed := int64(0); seed < 500; seed++ {
		e := NewWithRand(Config{MinPlayers: 3, MaxPlayers: 25}, rand.New(rand.NewSource(seed)))
		s := lobbyWith(users...)
		e.assignRoles(s.Players)
		for _, p := range s.Players {
			if p.Role == RoleWitch {
				witchSeen[p.User] = true
			}
		}
	}

	// uniform sampling has to hit every seat over 500 rounds
	for _, u := range users {
		if !witchSeen[u] {
			t.Fatalf("seat %s was never assigned witch", u)
		}
	}
}
