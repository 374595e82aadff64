package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/witchhunt-game/backend/internal/auth"
	"github.com/witchhunt-game/backend/internal/engine"
	"github.com/witchhunt-game/backend/internal/hub"
	"github.com/witchhunt-game/backend/internal/lobby"
	"github.com/witchhunt-game/backend/internal/types"
)

// Handler upgrades to a websocket, authenticates the handshake and bridges
// the connection to the room's lobby: actions in, snapshots and errors out.
func Handler(h *hub.Hub, authSvc *auth.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := uuid.Parse(r.URL.Query().Get("room"))
		if err != nil {
			http.Error(w, "missing or invalid room id", http.StatusBadRequest)
			return
		}

		user, err := authSvc.User(r.Context(), r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "invalid authentication token", http.StatusUnauthorized)
			return
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureLobby{RoomID: roomID, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Snapshot, 8)
		clientID := uuid.NewString()

		lb.Inbox() <- lobby.Join{ClientID: clientID, Outbox: out}
		defer func() { lb.Inbox() <- lobby.Leave{ClientID: clientID} }()

		log.Info("client connected",
			zap.String("room", roomID.String()),
			zap.String("user", user.Username))

		// writer goroutine: snapshots fan out until the lobby closes the outbox
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				writeJSON(writeCtx, conn, types.ServerMessage{
					Type:    "StateSnapshot",
					Version: snap.Version,
					State:   &snap.State,
				})
			}
		}()

		actorID := engine.UserID(user.ID.String())
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeJSON(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "bad json"})
				continue
			}

			params := make([]engine.UserID, 0, len(cm.Parameters))
			for _, p := range cm.Parameters {
				params = append(params, engine.UserID(p))
			}

			result := make(chan error, 1)
			lb.Inbox() <- lobby.FromClient{
				User:   actorID,
				Action: engine.Action(cm.Action),
				Params: params,
				Reply:  result,
			}

			select {
			case err := <-result:
				if err == nil {
					continue
				}
				msg := types.ServerMessage{Type: "Error", Error: err.Error()}
				if rej, ok := engine.AsRejection(err); ok {
					msg.Code = string(rej.Kind)
				}
				writeJSON(r.Context(), conn, msg)
			case <-time.After(5 * time.Second):
				writeJSON(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "room is busy, try again"})
			}
		}
	}
}

func writeJSON(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = conn.Write(writeCtx, websocket.MessageText, payload)
}
