package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/solarbazaar/marketplace-api/internal/marketplace"
	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
	"github.com/solarbazaar/marketplace-api/internal/model"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

type marketplaceUseCase struct {
	repo   marketplace.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewMarketplaceUseCase wires the search usecase. cache may be nil; the
// service then runs uncached.
func NewMarketplaceUseCase(repo marketplace.Repository, cache *redis.Client, log *zap.Logger) marketplace.UseCase {
	return &marketplaceUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

type cachedPage struct {
	Listings   []dto.Listing
	Pagination dto.Pagination
}

func (uc *marketplaceUseCase) Search(ctx context.Context, f *dto.SearchFilters) ([]dto.Listing, dto.Pagination, error) {
	f.Normalize()

	cacheKey := ""
	if uc.cache != nil {
		cacheKey = listCacheKey(f)
		if val, err := uc.cache.Get(ctx, cacheKey).Result(); err == nil {
			var page cachedPage
			if err := json.Unmarshal([]byte(val), &page); err == nil {
				return page.Listings, page.Pagination, nil
			}
		}
	}

	rows, total, err := uc.repo.Search(ctx, f)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	listings := make([]dto.Listing, len(rows))
	for i := range rows {
		listings[i] = buildListing(&rows[i])
	}

	pagination := newPagination(f.Page, f.PageSize, total)

	if cacheKey != "" {
		if data, err := json.Marshal(cachedPage{Listings: listings, Pagination: pagination}); err == nil {
			uc.cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return listings, pagination, nil
}

func listCacheKey(f *dto.SearchFilters) string {
	data, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s%x", marketplace.ListCachePrefix, md5.Sum(data))
}

func newPagination(page, limit, total int) dto.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return dto.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// buildListing maps an aggregated row into the client record. Pure transform:
// computes the effective display price, falls back on supplier name, tolerates
// a malformed attributes bag by treating it as empty.
func buildListing(row *model.MarketplaceRow) dto.Listing {
	var locations []model.PriceLocation
	if len(row.Locations) > 0 {
		_ = json.Unmarshal(row.Locations, &locations)
	}
	if locations == nil {
		locations = []model.PriceLocation{}
	}

	// Display price: base ex-factory price, unless a location price undercuts
	// it or no usable base price exists.
	displayPrice := 0.0
	if row.PriceExFactory != nil {
		displayPrice = *row.PriceExFactory
	}
	if len(locations) > 0 {
		minLoc := locations[0].Price
		for _, loc := range locations[1:] {
			if loc.Price < minLoc {
				minLoc = loc.Price
			}
		}
		if displayPrice == 0 || minLoc < displayPrice {
			displayPrice = minLoc
		}
	}

	custom := map[string]interface{}{}
	if len(row.Attributes) > 0 {
		if err := json.Unmarshal(row.Attributes, &custom); err != nil {
			custom = map[string]interface{}{}
		}
	}

	supplier := "Unknown Supplier"
	if row.SupplierName != nil && *row.SupplierName != "" {
		supplier = *row.SupplierName
	}

	power := 0.0
	if row.PowerKW != nil {
		power = *row.PowerKW
	}

	return dto.Listing{
		ID:           row.ID,
		Name:         row.Name,
		Supplier:     supplier,
		SupplierID:   row.SupplierID,
		Category:     row.Category,
		Technology:   row.Technology,
		Type:         row.Type,
		Power:        power,
		MOQ:          row.MinOrder,
		Availability: row.AvailabilityDays,
		Validity:     row.Validity,
		PriceEx:      displayPrice,
		Datasheet:    row.Datasheet,
		PanFile:      row.PanFile,
		OndFile:      row.OndFile,
		Locations:    locations,
		CustomFields: custom,
	}
}
