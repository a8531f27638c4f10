package marketplace

import (
	"context"

	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
	"github.com/solarbazaar/marketplace-api/internal/model"
)

// ListCachePrefix namespaces cached listing pages; supplier writes drop every
// key under it.
const ListCachePrefix = "marketplace:list:"

type Repository interface {
	// Search returns one page of aggregated rows plus the pre-pagination
	// total of rows matching the filters.
	Search(ctx context.Context, f *dto.SearchFilters) ([]model.MarketplaceRow, int, error)
}
