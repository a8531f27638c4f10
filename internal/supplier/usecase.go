package supplier

import (
	"context"

	"github.com/jmoiron/sqlx/types"
	"github.com/solarbazaar/marketplace-api/internal/supplier/dto"
)

type UseCase interface {
	Dashboard(ctx context.Context, supplierID int64) (*dto.DashboardResponse, error)

	CreateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) (int64, error)
	UpdateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) error
	DeleteProduct(ctx context.Context, supplierID, productID int64) error
	ReorderProducts(ctx context.Context, supplierID int64, items []dto.ReorderItem) error
	UpdateProfile(ctx context.Context, supplierID int64, in *dto.ProfileInput) error
}
