package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/solarbazaar/marketplace-api/internal/auth"
	"github.com/solarbazaar/marketplace-api/internal/supplier"
	"github.com/solarbazaar/marketplace-api/internal/supplier/dto"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	uc     supplier.UseCase
	logger *zap.Logger
}

func NewSupplierHandler(uc supplier.UseCase, log *zap.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, logger: log}
}

// Dashboard handles GET /api/supplierdashboard. The supplierId parameter is
// kept for client compatibility but must match the token identity.
func (h *SupplierHandler) Dashboard(c *fiber.Ctx) error {
	param := c.Query("supplierId")
	if param == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID required"})
	}
	supplierID, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID required"})
	}
	if supplierID != auth.SupplierID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	resp, err := h.uc.Dashboard(c.Context(), supplierID)
	if err != nil {
		h.logger.Error("dashboard read failed", zap.Error(err), zap.Int64("supplier_id", supplierID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed"})
	}

	return c.JSON(resp)
}

type actionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type deleteInput struct {
	ID int64 `json:"id"`
}

// Dispatch handles POST /api/supplierdashboard. The body is {action, data};
// supplier identity always comes from the token, never from the payload.
func (h *SupplierHandler) Dispatch(c *fiber.Ctx) error {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	supplierID := auth.SupplierID(c)

	switch req.Action {
	case "create_product":
		var in dto.ProductInput
		if err := json.Unmarshal(req.Data, &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
		}
		newID, err := h.uc.CreateProduct(c.Context(), supplierID, &in, dto.ExtractAttributes(req.Data))
		if err != nil {
			return h.writeError(c, "create_product", err)
		}
		return c.JSON(fiber.Map{"success": true, "newId": newID})

	case "update_product":
		var in dto.ProductInput
		if err := json.Unmarshal(req.Data, &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
		}
		if err := h.uc.UpdateProduct(c.Context(), supplierID, &in, dto.ExtractAttributes(req.Data)); err != nil {
			return h.writeError(c, "update_product", err)
		}
		return c.JSON(fiber.Map{"success": true})

	case "delete_product":
		var in deleteInput
		if err := json.Unmarshal(req.Data, &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
		}
		if err := h.uc.DeleteProduct(c.Context(), supplierID, in.ID); err != nil {
			return h.writeError(c, "delete_product", err)
		}
		return c.JSON(fiber.Map{"success": true})

	case "reorder_products":
		var in dto.ReorderInput
		if err := json.Unmarshal(req.Data, &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
		}
		if err := h.uc.ReorderProducts(c.Context(), supplierID, in.Items); err != nil {
			return h.writeError(c, "reorder_products", err)
		}
		return c.JSON(fiber.Map{"success": true})

	case "update_profile":
		var in dto.ProfileInput
		if err := json.Unmarshal(req.Data, &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
		}
		if err := h.uc.UpdateProfile(c.Context(), supplierID, &in); err != nil {
			return h.writeError(c, "update_profile", err)
		}
		return c.JSON(fiber.Map{"success": true})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid Action"})
	}
}

func (h *SupplierHandler) writeError(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, supplier.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, supplier.ErrNameRequired), errors.Is(err, supplier.ErrIDRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.Error("supplier write failed", zap.String("action", action), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server Error"})
	}
}
