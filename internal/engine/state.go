package engine

// UserID is an opaque reference to an authenticated user. The engine never
// inspects it beyond equality.
type UserID string

type Status string

const (
	StatusLobby     Status = "Lobby"
	StatusStarted   Status = "Started"
	StatusCompleted Status = "Completed"
)

type Mode string

const (
	ModeDaytime   Mode = "Daytime"
	ModeNighttime Mode = "Nighttime"
)

type Role string

const (
	RoleVillager Role = "Villager"
	RoleWitch    Role = "Witch"
	RoleGirl     Role = "Girl"
)

type Team string

const (
	TeamVillagers Team = "Villagers"
	TeamWitches   Team = "Witches"
)

type PlayerStatus string

const (
	StatusAlive PlayerStatus = "Alive"
	StatusDead  PlayerStatus = "Dead"
)

type VoteState string

const (
	VoteNone   VoteState = ""
	VoteCast   VoteState = "Cast"
	VoteLocked VoteState = "Locked"
)

type Vote struct {
	Target UserID    `json:"target,omitempty"`
	State  VoteState `json:"state,omitempty"`
}

type Player struct {
	User   UserID       `json:"user"`
	Status PlayerStatus `json:"status"`
	Role   Role         `json:"role"`
	Team   Team         `json:"team"`
	Vote   Vote         `json:"vote"`
}

// GameState is the full authoritative state of one match. Every successful
// action returns a fresh value; callers can rely on their snapshot never
// being mutated.
type GameState struct {
	Status    Status   `json:"status"`
	Mode      Mode     `json:"mode,omitempty"`
	Round     int      `json:"round"`
	Players   []Player `json:"players"`
	Winners   Team     `json:"winners,omitempty"`
	Storytime string   `json:"storytime,omitempty"`
}

// Room is the slice of the collaborator-owned room record the engine needs.
// Owner and MaxPlayers are read-only here.
type Room struct {
	Owner      UserID
	MaxPlayers int
	State      GameState
}

func NewLobbyState() GameState {
	return GameState{Status: StatusLobby, Players: []Player{}}
}

func NewPlayer(user UserID) Player {
	return Player{User: user, Status: StatusAlive, Role: RoleVillager, Team: TeamVillagers}
}

// clone copies the state deep enough that mutating the result never touches
// the original. Player and Vote are plain value structs, so copying the
// slice is a full copy.
func (s GameState) clone() GameState {
	out := s
	out.Players = append([]Player(nil), s.Players...)
	return out
}

func findPlayer(players []Player, user UserID) *Player {
	for i := range players {
		if players[i].User == user {
			return &players[i]
		}
	}
	return nil
}

func resetVotes(players []Player) {
	for i := range players {
		players[i].Vote = Vote{}
	}
}
