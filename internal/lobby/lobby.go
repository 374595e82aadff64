package lobby

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/witchhunt-game/backend/internal/engine"
)

type Msg interface{ isLobbyMsg() }

// FromClient carries one player action. Reply receives the engine's
// rejection (or nil) so the transport can surface errors to the acting
// client only; state fan-out happens through the snapshot outboxes.
type FromClient struct {
	User   engine.UserID
	Action engine.Action
	Params []engine.UserID
	Reply  chan error
}

func (FromClient) isLobbyMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

type Snapshot struct {
	Version int
	State   engine.GameState
}

type View struct {
	Version    int
	NumClients int
	State      engine.GameState
}

// Store is the slice of the persistence layer the lobby needs.
type Store interface {
	UpdateState(ctx context.Context, id uuid.UUID, fromVersion int, state engine.GameState) error
}

// Lobby serializes every state mutation for one room: all actions funnel
// through a single goroutine, so two racing lockVotes can never both apply
// against the same snapshot.
type Lobby struct {
	inbox      chan Msg
	roomID     uuid.UUID
	owner      engine.UserID
	maxPlayers int
	state      engine.GameState
	version    int
	eng        *engine.Engine
	store      Store
	log        *zap.Logger
	clients    map[string]chan Snapshot
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewLobby(parent context.Context, eng *engine.Engine, store Store, log *zap.Logger, roomID uuid.UUID, room engine.Room, version int) *Lobby {
	ctx, cancel := context.WithCancel(parent)

	l := &Lobby{
		inbox:      make(chan Msg, 64),
		roomID:     roomID,
		owner:      room.Owner,
		maxPlayers: room.MaxPlayers,
		state:      room.State,
		version:    version,
		eng:        eng,
		store:      store,
		log:        log,
		clients:    make(map[string]chan Snapshot),
		ctx:        ctx,
		cancel:     cancel,
	}

	go l.loop()
	return l
}

func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				// register client + send current snapshot immediately
				l.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: l.version, State: l.state}

			case Leave:
				delete(l.clients, msg.ClientID)

			case FromClient:
				l.handleAction(msg)

			case GetState:
				msg.Reply <- View{
					Version:    l.version,
					NumClients: len(l.clients),
					State:      l.state,
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) handleAction(msg FromClient) {
	room := engine.Room{Owner: l.owner, MaxPlayers: l.maxPlayers, State: l.state}
	newState, err := l.eng.TakeAction(msg.User, msg.Action, room, msg.Params)
	if err != nil {
		l.reply(msg, err)
		return
	}

	if err := l.store.UpdateState(l.ctx, l.roomID, l.version, newState); err != nil {
		// the lobby is the single writer for its room, so a version
		// conflict here means an out-of-band write happened
		l.log.Error("persist room state",
			zap.String("room", l.roomID.String()),
			zap.Error(err))
		l.reply(msg, err)
		return
	}

	l.state = newState
	l.version++
	l.reply(msg, nil)
	l.broadcast(Snapshot{Version: l.version, State: l.state})
}

func (l *Lobby) reply(msg FromClient, err error) {
	if msg.Reply == nil {
		return
	}
	select {
	case msg.Reply <- err:
	default:
		// caller went away; never block the room loop
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch) // tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
			// ok
		default:
			// client is slow/full - drop them
			close(ch)
			delete(l.clients, id)
		}
	}
}
