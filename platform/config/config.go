package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Database struct {
	User     string
	Addr     string
	Password string
	Name     string
}

type Config struct {
	Port              string
	SocketPort        string
	ClientOrigin      string
	RedisURL          string
	CardStore         string // memory, postgres or sqlite
	SQLitePath        string
	DB                Database
	JWTSecret         string
	AdminPasswordHash string
	SessionTTL        time.Duration
	DiceSeed          int64 // 0 seeds from the clock
	ThreeDoublesJail  bool
	LogLevel          string
	LogFormat         string
}

// Load reads .env when present and falls back to defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using the environment only")
	}
	return Config{
		Port:         Get("PORT", "4101"),
		SocketPort:   Get("SOCKET_PORT", "8000"),
		ClientOrigin: Get("CLIENT_ORIGIN", "http://localhost:3000"),
		RedisURL:     Get("REDIS_URL", ""),
		CardStore:    Get("CARD_STORE", "memory"),
		SQLitePath:   Get("SQLITE_PATH", "./data/cards.db"),
		DB: Database{
			User:     Get("DB_USER", ""),
			Addr:     Get("DB_ADDR", "localhost:5432"),
			Password: Get("DB_PASSWORD", ""),
			Name:     Get("DB_NAME", ""),
		},
		JWTSecret:         Get("JWT_SECRET", "secret"),
		AdminPasswordHash: Get("ADMIN_PASSWORD_HASH", ""),
		SessionTTL:        Duration("SESSION_TTL", 12*time.Hour),
		DiceSeed:          Int64("DICE_SEED", 0),
		ThreeDoublesJail:  Bool("THREE_DOUBLES_JAIL", true),
		LogLevel:          Get("LOG_LEVEL", "info"),
		LogFormat:         Get("LOG_FORMAT", "text"),
	}
}

func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Duration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return d
}

func Int64(key string, def int64) int64 {
	n, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}
	return n
}

func Bool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}
