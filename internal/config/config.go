package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/witchhunt-game/backend/internal/engine"
)

// Config is the full service configuration, loaded once in main.
type Config struct {
	Port        string
	DatabaseURL string
	TokenSecret string
	TokenTTL    time.Duration
	Origin      string

	Game  engine.Config
	Rooms RoomDefaults
}

// RoomDefaults are applied when a room is created without explicit values.
type RoomDefaults struct {
	MaxPlayers     int
	SpokenLanguage string
}

// Load reads .env if present and builds the configuration from the
// environment. DATABASE_URL and TOKEN_SECRET have no sane defaults and are
// required.
func Load() (Config, error) {
	// .env is a developer convenience; absence is fine
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 24*time.Hour),
		Origin:      getEnv("ORIGIN", "http://localhost"),
		Game: engine.Config{
			MinPlayers: getEnvInt("GAME_MIN_PLAYERS", 3),
			MaxPlayers: getEnvInt("GAME_MAX_PLAYERS", 25),
		},
		Rooms: RoomDefaults{
			MaxPlayers:     getEnvInt("ROOM_DEFAULT_MAX_PLAYERS", 10),
			SpokenLanguage: getEnv("ROOM_DEFAULT_LANGUAGE", "English"),
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is required")
	}
	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("config: TOKEN_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
