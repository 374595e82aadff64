package hub

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/witchhunt-game/backend/internal/engine"
	"github.com/witchhunt-game/backend/internal/lobby"
	"github.com/witchhunt-game/backend/internal/storage"
)

type HubMsg interface{ isHubMsg() }

type GetLobby struct {
	RoomID uuid.UUID
	Reply  chan *lobby.Lobby
}

// EnsureLobby returns the live lobby for a room, loading the room from
// storage and spinning one up if needed. Reply gets nil when the room does
// not exist.
type EnsureLobby struct {
	RoomID uuid.UUID
	Reply  chan *lobby.Lobby
}

type RemoveLobby struct {
	RoomID uuid.UUID
}

type ShutdownHub struct{}

func (GetLobby) isHubMsg()    {}
func (EnsureLobby) isHubMsg() {}
func (RemoveLobby) isHubMsg() {}
func (ShutdownHub) isHubMsg() {}

// RoomLoader is the slice of storage the hub needs to revive rooms.
type RoomLoader interface {
	Room(ctx context.Context, id uuid.UUID) (*storage.GameRoom, error)
}

type Hub struct {
	inbox   chan HubMsg
	lobbies map[uuid.UUID]*lobby.Lobby
	eng     *engine.Engine
	rooms   RoomLoader
	store   lobby.Store
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context, eng *engine.Engine, rooms RoomLoader, store lobby.Store, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		lobbies: make(map[uuid.UUID]*lobby.Lobby),
		eng:     eng,
		rooms:   rooms,
		store:   store,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case GetLobby:
				msg.Reply <- h.lobbies[msg.RoomID] // may be nil

			case EnsureLobby:
				if lb := h.lobbies[msg.RoomID]; lb != nil {
					msg.Reply <- lb
					break
				}

				record, err := h.rooms.Room(h.ctx, msg.RoomID)
				if err != nil {
					if !errors.Is(err, storage.ErrNotFound) {
						h.log.Error("load room", zap.String("room", msg.RoomID.String()), zap.Error(err))
					}
					msg.Reply <- nil
					break
				}

				lb := lobby.NewLobby(h.ctx, h.eng, h.store, h.log, record.ID, record.Engine(), record.Version)
				h.lobbies[msg.RoomID] = lb
				msg.Reply <- lb

			case RemoveLobby:
				if lb := h.lobbies[msg.RoomID]; lb != nil {
					lb.Inbox() <- lobby.Shutdown{}
					delete(h.lobbies, msg.RoomID)
				}

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, lb := range h.lobbies {
		lb.Inbox() <- lobby.Shutdown{}
	}
	clear(h.lobbies)
	h.cancel()
}
