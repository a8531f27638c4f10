package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/solarbazaar/marketplace-api/internal/marketplace"
	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
	"go.uber.org/zap"
)

type MarketplaceHandler struct {
	uc     marketplace.UseCase
	logger *zap.Logger
}

func NewMarketplaceHandler(uc marketplace.UseCase, log *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc, logger: log}
}

// Search handles GET /api/marketplace.
func (h *MarketplaceHandler) Search(c *fiber.Ctx) error {
	f := &dto.SearchFilters{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Technology: c.Query("technology"),
		Location:   c.Query("location"),
		Sort:       c.Query("sort", "newest"),
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("limit", dto.DefaultPageSize),
	}

	if v := c.Query("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &p
		}
	}
	if v := c.Query("minQty"); v != "" {
		if q, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinQty = q
		}
	}

	listings, pagination, err := h.uc.Search(c.Context(), f)
	if err != nil {
		h.logger.Error("marketplace search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch market data",
		})
	}

	return c.JSON(dto.SearchResponse{
		Success:    true,
		Data:       listings,
		Pagination: pagination,
	})
}
