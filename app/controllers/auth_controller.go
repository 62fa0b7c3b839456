package controllers

import (
	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/tokens"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func sign(claims jwt.MapClaims) (string, error) {
	return tokens.Sign(deps.JWTSecret, claims, deps.TokenTTL)
}

// Protected rejects requests without a valid bearer token.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: deps.JWTSecret,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		},
	})
}

func claims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return mc
}

func isAdmin(c *fiber.Ctx) bool {
	return tokens.IsAdmin(claims(c))
}

// Login trades the admin password for an admin token.
func Login(c *fiber.Ctx) error {
	loginDto := new(models.LoginDto)
	if err := c.BodyParser(loginDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if deps.AdminPasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(deps.AdminPasswordHash), []byte(loginDto.Password)) != nil {
		logrus.WithField("ip", c.IP()).Warn("failed admin login")
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	t, err := sign(jwt.MapClaims{"role": tokens.RoleAdmin})
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"access_token": t})
}

func AdminOnly(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return c.SendStatus(fiber.StatusForbidden)
	}
	return c.Next()
}

// Cur echoes the claims of the caller's token.
func Cur(c *fiber.Ctx) error {
	mc := claims(c)
	return c.JSON(fiber.Map{"role": mc["role"], "game_id": mc["game_id"]})
}
