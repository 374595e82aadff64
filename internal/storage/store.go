package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/witchhunt-game/backend/internal/engine"
)

var (
	ErrNotFound        = errors.New("storage: not found")
	ErrVersionConflict = errors.New("storage: room version conflict")
)

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to postgres and migrates the schema.
func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	if err := db.AutoMigrate(&User{}, &GameRoom{}, &Message{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) CreateUser(ctx context.Context, u *User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (s *Store) UserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (s *Store) CreateRoom(ctx context.Context, r *GameRoom) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *Store) Room(ctx context.Context, id uuid.UUID) (*GameRoom, error) {
	var r GameRoom
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &r, err
}

func (s *Store) PublishedRooms(ctx context.Context) ([]GameRoom, error) {
	var rooms []GameRoom
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

// DeleteRoom removes a room, owner only. This is the counterpart of the
// engine's OwnerCannotLeave rule.
func (s *Store) DeleteRoom(ctx context.Context, id, owner uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, owner).
		Delete(&GameRoom{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateState writes a new game state with a compare-and-swap on Version.
// Two writers racing on the same snapshot cannot both win: the loser gets
// ErrVersionConflict and has to re-read and retry.
func (s *Store) UpdateState(ctx context.Context, id uuid.UUID, fromVersion int, state engine.GameState) error {
	res := s.db.WithContext(ctx).
		Model(&GameRoom{}).
		Where("id = ? AND version = ?", id, fromVersion).
		Updates(GameRoom{State: state, Version: fromVersion + 1})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		s.log.Warn("room state write lost the version race",
			zap.String("room", id.String()),
			zap.Int("from_version", fromVersion))
		return ErrVersionConflict
	}
	return nil
}

func (s *Store) CreateMessage(ctx context.Context, m *Message) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *Store) MessagesForRoom(ctx context.Context, roomID uuid.UUID) ([]Message, error) {
	var msgs []Message
	err := s.db.WithContext(ctx).
		Where("game_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}
