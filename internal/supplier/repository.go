package supplier

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx/types"
	"github.com/solarbazaar/marketplace-api/internal/model"
	"github.com/solarbazaar/marketplace-api/internal/supplier/dto"
)

var (
	// ErrProductNotFound is returned when a write targets a product that does
	// not exist or is owned by another supplier.
	ErrProductNotFound = errors.New("product not found")

	ErrNameRequired = errors.New("product name is required")
	ErrIDRequired   = errors.New("product id is required")
)

type Repository interface {
	FindProducts(ctx context.Context, supplierID int64) ([]model.SupplierProduct, error)
	FindProfile(ctx context.Context, supplierID int64) (*model.Supplier, error)

	CreateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) (int64, error)
	UpdateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) error
	DeleteProduct(ctx context.Context, supplierID, productID int64) error
	ReorderProducts(ctx context.Context, supplierID int64, items []dto.ReorderItem) error
	UpdateProfile(ctx context.Context, supplierID int64, in *dto.ProfileInput) error
}
