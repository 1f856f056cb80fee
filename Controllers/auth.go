package Controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"Concessionario/Dtos"
	"Concessionario/Services"
)

// AuthController handles administrator login and logout. The session
// principal travels as a JWT cookie.
type AuthController struct {
	Service *Services.AuthService
}

func NewAuthController(service *Services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// Login authenticates the administrator. Any failure answers 400 with a
// null username; the message is the same for unknown email and wrong
// password on purpose.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req Dtos.LoginRequestDto
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(Dtos.LoginResponseDto{
			Success: false,
			Message: "Credenziali non valide",
		})
	}

	admin, err := c.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, Services.ErrAuthentication) {
			return ctx.Status(fiber.StatusBadRequest).JSON(Dtos.LoginResponseDto{
				Success: false,
				Message: "Credenziali non valide",
			})
		}
		return internalError(ctx, err, "Login failed")
	}

	token, err := c.Service.IssueToken(admin)
	if err != nil {
		return internalError(ctx, err, "Failed to issue session token")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(Services.TokenLifetime),
		HTTPOnly: true,
	})

	username := admin.Username
	return ctx.JSON(Dtos.LoginResponseDto{
		Username: &username,
		Success:  true,
		Message:  "Login effettuato con successo",
	})
}

// Logout clears the session cookie.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return ctx.JSON(fiber.Map{"message": "Logout effettuato con successo"})
}
