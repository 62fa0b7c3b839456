package controllers

import (
	"strconv"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	socket "github.com/DedS3t/drinkopoly-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
)

func ListCards(c *fiber.Ctx) error {
	chance, miniGame, err := deps.Sessions.Library(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"chance": chance, "minigame": miniGame})
}

// editCard runs op on the library. With ?game=<id> the change also lands in
// that game's draw stacks.
func editCard(c *fiber.Ctx, op deck.Op, id int, dto models.CardDto) error {
	gameId := c.Query("game")
	card, err := deps.Sessions.EditLibrary(c.Context(), gameId, op, id, dto)
	if err != nil {
		return fail(c, err)
	}
	if gameId != "" {
		if state, err := deps.Sessions.Get(c.Context(), gameId); err == nil {
			socket.Broadcast(deps.Socket, gameId, state)
		}
	}
	code := fiber.StatusOK
	if op == deck.OpAdd {
		code = fiber.StatusCreated
	}
	return c.Status(code).JSON(card)
}

func cardId(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

func AddCard(c *fiber.Ctx) error {
	cardDto := new(models.CardDto)
	if err := c.BodyParser(cardDto); err != nil || cardDto.Text == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return editCard(c, deck.OpAdd, 0, *cardDto)
}

func UpdateCard(c *fiber.Ctx) error {
	id, ok := cardId(c)
	cardDto := new(models.CardDto)
	if err := c.BodyParser(cardDto); err != nil || !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return editCard(c, deck.OpUpdate, id, *cardDto)
}

func DeleteCard(c *fiber.Ctx) error {
	id, ok := cardId(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return editCard(c, deck.OpDelete, id, models.CardDto{})
}

func RestoreCard(c *fiber.Ctx) error {
	id, ok := cardId(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return editCard(c, deck.OpRestore, id, models.CardDto{})
}

func ResetCards(c *fiber.Ctx) error {
	if err := deps.Sessions.ResetLibrary(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
