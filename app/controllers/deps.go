package controllers

import (
	"errors"
	"time"

	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	"github.com/DedS3t/drinkopoly-backend/platform/engine"
	"github.com/DedS3t/drinkopoly-backend/platform/queries"
	"github.com/gofiber/fiber/v2"
	socketio "github.com/googollee/go-socket.io"
)

type Deps struct {
	Sessions          *queries.Sessions
	Socket            *socketio.Server // nil disables push
	JWTSecret         []byte
	AdminPasswordHash string
	TokenTTL          time.Duration
}

var deps Deps

// Setup must run before any route is registered.
func Setup(d Deps) {
	if d.TokenTTL <= 0 {
		d.TokenTTL = 12 * time.Hour
	}
	deps = d
}

func status(err error) int {
	switch {
	case errors.Is(err, queries.ErrNotFound), errors.Is(err, deck.ErrCardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, queries.ErrBusy):
		return fiber.StatusLocked
	case errors.Is(err, engine.ErrInvalidCommand), errors.Is(err, engine.ErrGameOver), errors.Is(err, engine.ErrNoPlayers):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrUnknownCommand):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(status(err)).JSON(fiber.Map{"error": err.Error()})
}
