package marketplace

import (
	"context"

	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
)

type UseCase interface {
	Search(ctx context.Context, f *dto.SearchFilters) ([]dto.Listing, dto.Pagination, error)
}
