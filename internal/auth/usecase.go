package auth

import (
	"context"

	"github.com/solarbazaar/marketplace-api/internal/auth/dto"
)

type UseCase interface {
	Register(ctx context.Context, in *dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, in *dto.LoginInput) (*dto.AuthResponse, error)
}
