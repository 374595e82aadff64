package hub

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/witchhunt-game/backend/internal/engine"
	"github.com/witchhunt-game/backend/internal/lobby"
	"github.com/witchhunt-game/backend/internal/storage"
)

type fakeRooms struct {
	rooms map[uuid.UUID]*storage.GameRoom
}

func (f *fakeRooms) Room(_ context.Context, id uuid.UUID) (*storage.GameRoom, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, storage.ErrNotFound
}

type nopStore struct{}

func (nopStore) UpdateState(context.Context, uuid.UUID, int, engine.GameState) error { return nil }

func TestHub_EnsureLobbyLoadsRoomOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	roomID := uuid.New()
	rooms := &fakeRooms{rooms: map[uuid.UUID]*storage.GameRoom{
		roomID: {ID: roomID, OwnerID: uuid.New(), MaxPlayers: 10, State: engine.NewLobbyState()},
	}}

	eng := engine.New(engine.DefaultConfig())
	h := NewHub(ctx, eng, rooms, nopStore{}, zap.NewNop())

	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- EnsureLobby{RoomID: roomID, Reply: reply}
	first := recvLobby(t, reply)
	if first == nil {
		t.Fatalf("expected a lobby for a stored room")
	}

	h.Inbox() <- EnsureLobby{RoomID: roomID, Reply: reply}
	if second := recvLobby(t, reply); second != first {
		t.Fatalf("ensure must reuse the live lobby")
	}

	h.Inbox() <- EnsureLobby{RoomID: uuid.New(), Reply: reply}
	if got := recvLobby(t, reply); got != nil {
		t.Fatalf("unknown room must yield nil, got %v", got)
	}
}

func recvLobby(t *testing.T, ch <-chan *lobby.Lobby) *lobby.Lobby {
	t.Helper()
	select {
	case lb := <-ch:
		return lb
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for lobby reply")
		return nil // unreachable
	}
}
