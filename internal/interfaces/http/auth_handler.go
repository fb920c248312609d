package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/auth"
	"github.com/jhoicas/inventario-lotes/internal/application/dto"
)

// AuthHandler endpoints públicos de autenticación.
type AuthHandler struct {
	authUC *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.UseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register POST /api/auth/register — alta de empresa con su primer usuario admin.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	resp, err := h.authUC.Register(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	resp, err := h.authUC.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
