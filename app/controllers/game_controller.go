package controllers

import (
	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/engine"
	"github.com/DedS3t/drinkopoly-backend/platform/logging"
	socket "github.com/DedS3t/drinkopoly-backend/platform/sockets"
	"github.com/DedS3t/drinkopoly-backend/platform/tokens"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// CreateGame deals a new game and hands back a token scoped to it.
func CreateGame(c *fiber.Ctx) error {
	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id, state, err := deps.Sessions.StartGame(c.Context(), gameCreateDto.Players)
	if err != nil {
		logging.Game(id).WithError(err).Error("failed creating game")
		return fail(c, err)
	}
	t, err := sign(jwt.MapClaims{"game_id": id})
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           id,
		"access_token": t,
		"state":        state,
	})
}

// RequireGame lets through tokens issued for the :id game, and admins.
func RequireGame(c *fiber.Ctx) error {
	if tokens.CanPlay(claims(c), c.Params("id")) {
		return c.Next()
	}
	return c.SendStatus(fiber.StatusForbidden)
}

func GetGame(c *fiber.Ctx) error {
	state, err := deps.Sessions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

func Command(c *fiber.Ctx) error {
	id := c.Params("id")
	commandDto := new(models.CommandDto)
	if err := c.BodyParser(commandDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var (
		state models.GameState
		err   error
	)
	switch kind := engine.CommandKind(commandDto.Command); kind {
	case engine.RestartGame:
		state, err = deps.Sessions.Restart(c.Context(), id)
	case engine.StartGame:
		err = engine.ErrInvalidCommand
	default:
		state, err = deps.Sessions.Apply(c.Context(), id, engine.Command{
			Kind:     kind,
			PlayerId: commandDto.PlayerId,
		})
	}
	if err != nil {
		return fail(c, err)
	}
	socket.Broadcast(deps.Socket, id, state)
	return c.JSON(state)
}

func DeleteGame(c *fiber.Ctx) error {
	if err := deps.Sessions.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
