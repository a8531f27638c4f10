package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/solarbazaar/marketplace-api/internal/auth"
	"github.com/solarbazaar/marketplace-api/internal/auth/dto"
	"github.com/solarbazaar/marketplace-api/internal/auth/usecase"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger *zap.Logger
}

func NewAuthHandler(uc auth.UseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: log}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	resp, err := h.uc.Register(c.Context(), &in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, auth.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			h.logger.Error("register failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server Error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	resp, err := h.uc.Login(c.Context(), &in)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.Error("login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server Error"})
	}

	return c.JSON(resp)
}
