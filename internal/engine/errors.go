package engine

// RejectKind is the machine-checkable discriminator of a rejection. The
// transport layer forwards it verbatim so clients can branch without
// parsing messages.
type RejectKind string

const (
	KindRoomFull         RejectKind = "RoomFull"
	KindAlreadySignedUp  RejectKind = "AlreadySignedUp"
	KindOwnerCannotLeave RejectKind = "OwnerCannotLeave"
	KindNotOwner         RejectKind = "NotOwner"
	KindNotLobby         RejectKind = "NotLobby"
	KindNotEnoughPlayers RejectKind = "NotEnoughPlayers"
	KindTooManyPlayers   RejectKind = "TooManyPlayers"
	KindGameNotActive    RejectKind = "GameNotActive"
	KindIneligibleVoter  RejectKind = "IneligibleVoter"
	KindAlreadyLocked    RejectKind = "AlreadyLocked"
	KindVoteNotCast      RejectKind = "VoteNotCast"
	KindInvalidTarget    RejectKind = "InvalidTarget"
	KindUnknownAction    RejectKind = "UnknownAction"
)

// Rejection is a failed precondition reported as data. None of these are
// retryable; the user has to take a different action.
type Rejection struct {
	Kind    RejectKind
	Message string
}

func (r *Rejection) Error() string { return r.Message }

var (
	ErrRoomFull         = &Rejection{KindRoomFull, "this room is already full"}
	ErrAlreadySignedUp  = &Rejection{KindAlreadySignedUp, "this user is already signed up for this game room"}
	ErrOwnerCannotLeave = &Rejection{KindOwnerCannotLeave, "game owner cannot leave, delete the room instead"}
	ErrNotOwner         = &Rejection{KindNotOwner, "user is not the owner of this game room"}
	ErrNotLobby         = &Rejection{KindNotLobby, "game was already started"}
	ErrNotEnoughPlayers = &Rejection{KindNotEnoughPlayers, "not enough players to start the game"}
	ErrTooManyPlayers   = &Rejection{KindTooManyPlayers, "too many players signed up for this room"}
	ErrGameNotActive    = &Rejection{KindGameNotActive, "game is not currently active"}
	ErrIneligibleVoter  = &Rejection{KindIneligibleVoter, "user is not eligible to vote"}
	ErrAlreadyLocked    = &Rejection{KindAlreadyLocked, "user has already locked their vote for this round"}
	ErrVoteNotCast      = &Rejection{KindVoteNotCast, "a vote has to be cast before it can be locked"}
	ErrInvalidTarget    = &Rejection{KindInvalidTarget, "invalid target"}
	ErrUnknownAction    = &Rejection{KindUnknownAction, "action does not exist, check the documentation for available actions"}
)

// AsRejection unwraps err into a Rejection, if it is one.
func AsRejection(err error) (*Rejection, bool) {
	r, ok := err.(*Rejection)
	return r, ok
}
