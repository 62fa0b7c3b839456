package routes

import (
	"github.com/DedS3t/drinkopoly-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")
	route.Post("/create", controllers.CreateGame)

	guard := []fiber.Handler{controllers.Protected(), controllers.RequireGame}
	route.Get("/:id", append(guard, controllers.GetGame)...)
	route.Post("/:id/command", append(guard, controllers.Command)...)
	route.Delete("/:id", append(guard, controllers.DeleteGame)...)
}
