package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/witchhunt-game/backend/internal/engine"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GameRoom holds the room record plus the authoritative game state as a
// JSON column. Version guards every state write: see Store.UpdateState.
type GameRoom struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string           `gorm:"size:40" json:"name"`
	OwnerID        uuid.UUID        `gorm:"type:uuid;index;not null" json:"owner"`
	MaxPlayers     int              `json:"maxPlayers"`
	IsPublished    bool             `json:"isPublished"`
	SpokenLanguage string           `json:"spokenLanguage"`
	State          engine.GameState `gorm:"serializer:json" json:"state"`
	Version        int              `json:"version"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Engine converts the stored record into the read-only snapshot the rules
// engine consumes.
func (r *GameRoom) Engine() engine.Room {
	return engine.Room{
		Owner:      engine.UserID(r.OwnerID.String()),
		MaxPlayers: r.MaxPlayers,
		State:      r.State,
	}
}

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index;not null" json:"author"`
	GameID    uuid.UUID `gorm:"type:uuid;index;not null" json:"game"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (r *GameRoom) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
