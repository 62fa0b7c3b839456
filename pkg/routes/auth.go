package routes

import (
	"github.com/DedS3t/drinkopoly-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(a *fiber.App) {
	route := a.Group("/auth")

	route.Post("/login", controllers.Login)
	route.Get("/me", controllers.Protected(), controllers.Cur)
}
