package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/solarbazaar/marketplace-api/internal/auth"
	"github.com/solarbazaar/marketplace-api/internal/auth/dto"
	"go.uber.org/zap"
)

var ErrMissingFields = errors.New("company name, email and password are required")

type authUseCase struct {
	repo   auth.Repository
	jwt    *auth.JWTManager
	hasher *auth.PasswordHasher
	logger *zap.Logger
}

func NewAuthUseCase(repo auth.Repository, jwt *auth.JWTManager, hasher *auth.PasswordHasher, log *zap.Logger) auth.UseCase {
	return &authUseCase{
		repo:   repo,
		jwt:    jwt,
		hasher: hasher,
		logger: log,
	}
}

func (uc *authUseCase) Register(ctx context.Context, in *dto.RegisterInput) (*dto.AuthResponse, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.CompanyName == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	id, err := uc.repo.CreateSupplier(ctx, in.CompanyName, in.Email, hash)
	if err != nil {
		return nil, err
	}

	token, err := uc.jwt.Generate(id, in.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, SupplierID: id}, nil
}

func (uc *authUseCase) Login(ctx context.Context, in *dto.LoginInput) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	s, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Hash comparison runs either way so a missing account costs the same as
	// a wrong password.
	if s == nil {
		uc.hasher.Verify(in.Password, "$2a$12$0000000000000000000000000000000000000000000000000000")
		return nil, auth.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, s.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := uc.jwt.Generate(s.ID, s.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, SupplierID: s.ID}, nil
}
