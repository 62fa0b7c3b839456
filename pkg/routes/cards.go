package routes

import (
	"github.com/DedS3t/drinkopoly-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func CardRoutes(a *fiber.App) {
	route := a.Group("/cards")
	route.Get("/", controllers.ListCards)

	admin := []fiber.Handler{controllers.Protected(), controllers.AdminOnly}
	route.Post("/", append(admin, controllers.AddCard)...)
	route.Post("/reset", append(admin, controllers.ResetCards)...)
	route.Put("/:id", append(admin, controllers.UpdateCard)...)
	route.Delete("/:id", append(admin, controllers.DeleteCard)...)
	route.Post("/:id/restore", append(admin, controllers.RestoreCard)...)
}
