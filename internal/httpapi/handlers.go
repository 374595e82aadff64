package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/witchhunt-game/backend/internal/auth"
	"github.com/witchhunt-game/backend/internal/config"
	"github.com/witchhunt-game/backend/internal/engine"
	"github.com/witchhunt-game/backend/internal/hub"
	"github.com/witchhunt-game/backend/internal/storage"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// API bundles the collaborators the HTTP handlers need.
type API struct {
	store *storage.Store
	auth  *auth.Service
	hub   *hub.Hub
	game  engine.Config
	rooms config.RoomDefaults
	log   *zap.Logger
}

func NewAPI(store *storage.Store, authSvc *auth.Service, h *hub.Hub, game engine.Config, rooms config.RoomDefaults, log *zap.Logger) *API {
	return &API{store: store, auth: authSvc, hub: h, game: game, rooms: rooms, log: log}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (a *API) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Image    string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "bad json")
		return
	}
	if body.Username == "" || body.Password == "" {
		httpError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if !emailPattern.MatchString(body.Email) {
		httpError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	user, err := a.auth.Signup(r.Context(), body.Username, body.Email, body.Password, body.Image)
	if err != nil {
		a.log.Warn("signup failed", zap.String("email", body.Email), zap.Error(err))
		httpError(w, http.StatusBadRequest, "could not create account")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "bad json")
		return
	}

	token, user, err := a.auth.Login(r.Context(), body.Email, body.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		httpError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		a.log.Error("login failed", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (a *API) CreateRoom(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	var body struct {
		Name           string `json:"name"`
		MaxPlayers     int    `json:"maxPlayers"`
		IsPublished    *bool  `json:"isPublished"`
		SpokenLanguage string `json:"spokenLanguage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "bad json")
		return
	}

	if body.Name == "" {
		body.Name = fmt.Sprintf("%s's Witchhunt", user.Username)
	}
	if body.MaxPlayers == 0 {
		body.MaxPlayers = a.rooms.MaxPlayers
	}
	if body.MaxPlayers < a.game.MinPlayers || body.MaxPlayers > a.game.MaxPlayers {
		httpError(w, http.StatusBadRequest,
			fmt.Sprintf("maxPlayers must be between %d and %d", a.game.MinPlayers, a.game.MaxPlayers))
		return
	}
	if body.SpokenLanguage == "" {
		body.SpokenLanguage = a.rooms.SpokenLanguage
	}
	published := true
	if body.IsPublished != nil {
		published = *body.IsPublished
	}

	// the owner takes the first seat of the fresh lobby
	state := engine.NewLobbyState()
	state.Players = append(state.Players, engine.NewPlayer(engine.UserID(user.ID.String())))

	room := &storage.GameRoom{
		Name:           body.Name,
		OwnerID:        user.ID,
		MaxPlayers:     body.MaxPlayers,
		IsPublished:    published,
		SpokenLanguage: body.SpokenLanguage,
		State:          state,
	}
	if err := a.store.CreateRoom(r.Context(), room); err != nil {
		a.log.Error("create room", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "could not create room")
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (a *API) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := a.store.PublishedRooms(r.Context())
	if err != nil {
		a.log.Error("list rooms", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "could not list rooms")
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (a *API) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "roomID"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := a.store.Room(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		httpError(w, http.StatusNotFound, "room not found")
		return
	}
	if err != nil {
		a.log.Error("get room", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "could not load room")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// DeleteRoom is the owner's exit: the engine refuses to let owners leave,
// they tear the room down instead.
func (a *API) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "roomID"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := a.store.DeleteRoom(r.Context(), id, user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "room not found")
			return
		}
		a.log.Error("delete room", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "could not delete room")
		return
	}

	a.hub.Inbox() <- hub.RemoveLobby{RoomID: id}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) ListMessages(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("game"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "missing or invalid game id")
		return
	}

	msgs, err := a.store.MessagesForRoom(r.Context(), roomID)
	if err != nil {
		a.log.Error("list messages", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "could not load messages")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (a *API) PostMessage(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	var body struct {
		GameID  uuid.UUID `json:"gameId"`
		Content string    `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "bad json")
		return
	}
	if body.Content == "" {
		httpError(w, http.StatusBadRequest, "message content required")
		return
	}

	msg := &storage.Message{AuthorID: user.ID, GameID: body.GameID, Content: body.Content}
	if err := a.store.CreateMessage(r.Context(), msg); err != nil {
		a.log.Error("create message", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "could not store message")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
