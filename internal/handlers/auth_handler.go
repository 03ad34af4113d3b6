package handlers

import (
	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes signup, login and the admin user listing.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httperr.New(httperr.KindValidation, "invalid request body")
	}

	if err := h.auth.Signup(c.Context(), req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user created successfully"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httperr.New(httperr.KindValidation, "invalid request body")
	}

	signed, user, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	// Public profile projection only; never the hash or internal id.
	return c.JSON(fiber.Map{
		"message": "logged in successfully",
		"token":   signed,
		"userData": fiber.Map{
			"firstName": user.FirstName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// ListUsers serves the admin panel's user table.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}
