package auth

import (
	"context"
	"errors"

	"github.com/solarbazaar/marketplace-api/internal/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Repository interface {
	CreateSupplier(ctx context.Context, companyName, email, passwordHash string) (int64, error)
	FindByEmail(ctx context.Context, email string) (*model.Supplier, error)
}
