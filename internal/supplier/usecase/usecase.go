package usecase

import (
	"context"

	"github.com/jmoiron/sqlx/types"
	"github.com/redis/go-redis/v9"
	"github.com/solarbazaar/marketplace-api/internal/marketplace"
	"github.com/solarbazaar/marketplace-api/internal/model"
	"github.com/solarbazaar/marketplace-api/internal/supplier"
	"github.com/solarbazaar/marketplace-api/internal/supplier/dto"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewSupplierUseCase wires the dashboard usecase. cache may be nil.
func NewSupplierUseCase(repo supplier.Repository, cache *redis.Client, log *zap.Logger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *supplierUseCase) Dashboard(ctx context.Context, supplierID int64) (*dto.DashboardResponse, error) {
	products, err := uc.repo.FindProducts(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.repo.FindProfile(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Products: products,
		Profile:  dto.Profile{Gallery: []string{}},
	}
	if profile != nil {
		resp.Profile = dto.Profile{
			CompanyName: profile.CompanyName,
			Email:       profile.Email,
			Phone:       profile.Phone,
			Website:     profile.Website,
			Location:    profile.Location,
			AboutUs:     profile.AboutUs,
			Gallery:     profile.Gallery,
		}
		if resp.Profile.Gallery == nil {
			resp.Profile.Gallery = []string{}
		}
	}
	if resp.Products == nil {
		resp.Products = []model.SupplierProduct{}
	}

	return resp, nil
}

func (uc *supplierUseCase) CreateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) (int64, error) {
	if in.Name == "" {
		return 0, supplier.ErrNameRequired
	}
	if in.Category == "" {
		in.Category = "module"
	}

	newID, err := uc.repo.CreateProduct(ctx, supplierID, in, attrs)
	if err != nil {
		return 0, err
	}

	go uc.invalidateListingCache(context.Background())
	return newID, nil
}

func (uc *supplierUseCase) UpdateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) error {
	if in.ID == 0 {
		return supplier.ErrIDRequired
	}

	if err := uc.repo.UpdateProduct(ctx, supplierID, in, attrs); err != nil {
		return err
	}

	go uc.invalidateListingCache(context.Background())
	return nil
}

func (uc *supplierUseCase) DeleteProduct(ctx context.Context, supplierID, productID int64) error {
	if productID == 0 {
		return supplier.ErrIDRequired
	}

	if err := uc.repo.DeleteProduct(ctx, supplierID, productID); err != nil {
		return err
	}

	go uc.invalidateListingCache(context.Background())
	return nil
}

func (uc *supplierUseCase) ReorderProducts(ctx context.Context, supplierID int64, items []dto.ReorderItem) error {
	if err := uc.repo.ReorderProducts(ctx, supplierID, items); err != nil {
		return err
	}

	go uc.invalidateListingCache(context.Background())
	return nil
}

func (uc *supplierUseCase) UpdateProfile(ctx context.Context, supplierID int64, in *dto.ProfileInput) error {
	if err := uc.repo.UpdateProfile(ctx, supplierID, in); err != nil {
		return err
	}

	go uc.invalidateListingCache(context.Background())
	return nil
}

// invalidateListingCache drops every cached marketplace page; any catalog or
// profile write can change what buyers see.
func (uc *supplierUseCase) invalidateListingCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Keys(ctx, marketplace.ListCachePrefix+"*").Result()
	if err != nil {
		uc.logger.Warn("listing cache invalidation failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		uc.cache.Del(ctx, keys...)
	}
}
