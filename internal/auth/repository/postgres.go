package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/solarbazaar/marketplace-api/internal/auth"
	"github.com/solarbazaar/marketplace-api/internal/model"
)

const uniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateSupplier(ctx context.Context, companyName, email, passwordHash string) (int64, error) {
	query := `
        INSERT INTO suppliers (company_name, email, password_hash, gallery)
        VALUES ($1, $2, $3, '{}')
        RETURNING id
    `

	var id int64
	err := r.DB.GetContext(ctx, &id, query, companyName, email, passwordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, auth.ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.Supplier, error) {
	var s model.Supplier
	query := `SELECT * FROM suppliers WHERE email = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
