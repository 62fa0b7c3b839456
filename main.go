package main

import (
	"context"
	"time"

	"github.com/DedS3t/drinkopoly-backend/app/controllers"
	"github.com/DedS3t/drinkopoly-backend/pkg/routes"
	"github.com/DedS3t/drinkopoly-backend/platform/cache"
	"github.com/DedS3t/drinkopoly-backend/platform/config"
	"github.com/DedS3t/drinkopoly-backend/platform/database"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	"github.com/DedS3t/drinkopoly-backend/platform/engine"
	"github.com/DedS3t/drinkopoly-backend/platform/logging"
	"github.com/DedS3t/drinkopoly-backend/platform/queries"
	socket "github.com/DedS3t/drinkopoly-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

// cardStore opens the configured card library and returns its closer.
func cardStore(cfg config.Config) (deck.Store, func() error) {
	switch cfg.CardStore {
	case "postgres":
		db := database.PostgreSQLConnection(cfg.DB)
		if err := database.Migrate(context.Background(), db); err != nil {
			logrus.WithError(err).Fatal("failed to migrate cards table")
		}
		return database.NewCardStore(db), db.Close
	case "sqlite":
		store, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open sqlite card store")
		}
		return store, store.Close
	}
	return deck.NewMemoryStore(), func() error { return nil }
}

func redisPool(cfg config.Config) (*redis.Pool, func()) {
	if cfg.RedisURL != "" {
		pool := cache.CreateRedisPool(cfg.RedisURL)
		return pool, func() { pool.Close() }
	}
	pool, srv, err := cache.NewMemoryPool()
	if err != nil {
		logrus.WithError(err).Fatal("failed to start in-memory redis")
	}
	return pool, func() {
		pool.Close()
		srv.Close()
	}
}

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	pool, closePool := redisPool(cfg)
	defer closePool()
	if err := cache.Ping(pool); err != nil {
		logrus.WithError(err).Fatal("redis unreachable")
	}

	seed := cfg.DiceSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rules := engine.DefaultRules()
	rules.ThreeDoublesToJail = cfg.ThreeDoublesJail

	cards, closeCards := cardStore(cfg)
	defer func() {
		if err := closeCards(); err != nil {
			logrus.WithError(err).Warn("failed to close card store")
		}
	}()

	sessions := &queries.Sessions{
		Pool:  pool,
		Cards: cards,
		Dice:  engine.NewRandomRoller(seed),
		Rules: rules,
		TTL:   cfg.SessionTTL,
	}

	server, err := socket.CreateSocketIOServer(sessions, []byte(cfg.JWTSecret))
	if err != nil {
		logrus.WithError(err).Fatal("failed to create socket.io server")
	}
	go func() {
		if err := socket.ListenAndServe(server, ":"+cfg.SocketPort, cfg.ClientOrigin); err != nil {
			logrus.WithError(err).Error("socket listener stopped")
		}
	}()

	controllers.Setup(controllers.Deps{
		Sessions:          sessions,
		Socket:            server,
		JWTSecret:         []byte(cfg.JWTSecret),
		AdminPasswordHash: cfg.AdminPasswordHash,
	})

	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.ClientOrigin}))
	routes.AuthRoutes(app)
	routes.GameRoutes(app)
	routes.CardRoutes(app)

	logrus.WithField("port", cfg.Port).Info("http listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Error("http server stopped")
	}
}
