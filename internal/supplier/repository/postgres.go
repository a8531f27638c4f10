package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/solarbazaar/marketplace-api/internal/model"
	"github.com/solarbazaar/marketplace-api/internal/supplier"
	"github.com/solarbazaar/marketplace-api/internal/supplier/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindProducts(ctx context.Context, supplierID int64) ([]model.SupplierProduct, error) {
	// row_order first so the drag-and-drop order persists.
	query := `
        SELECT
            p.id, p.supplier_id, p.name, p.category, p.technology, p.type,
            p.power_kw, p.min_order, p.qty_mw, p.availability_days,
            p.stock_location, p.datasheet, p.panfile, p.ondfile, p.validity,
            p.price_ex_factory, p.attributes, p.row_order, p.created_at,
            COALESCE(
                json_agg(
                    json_build_object('state', pp.state, 'city', pp.city, 'price', pp.price)
                ) FILTER (WHERE pp.id IS NOT NULL),
                '[]'
            ) AS locations
        FROM products p
        LEFT JOIN product_pricing pp ON p.id = pp.product_id
        WHERE p.supplier_id = $1
        GROUP BY p.id
        ORDER BY p.row_order ASC, p.id DESC
    `

	var products []model.SupplierProduct
	if err := r.DB.SelectContext(ctx, &products, query, supplierID); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindProfile(ctx context.Context, supplierID int64) (*model.Supplier, error) {
	var s model.Supplier
	query := `SELECT * FROM suppliers WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, supplierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// buildLocationInsert lays out a single multi-row INSERT for the submitted
// location prices, four binds per row.
func buildLocationInsert(productID int64, locs []dto.LocationInput) (string, []interface{}) {
	values := make([]interface{}, 0, len(locs)*4)
	placeholders := make([]string, 0, len(locs))
	for i, loc := range locs {
		n := i * 4
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4))
		values = append(values, productID, loc.State, loc.City, loc.Price)
	}
	query := "INSERT INTO product_pricing (product_id, state, city, price) VALUES " + strings.Join(placeholders, ",")
	return query, values
}

func insertLocations(ctx context.Context, tx *sqlx.Tx, productID int64, locs []dto.LocationInput) error {
	if len(locs) == 0 {
		return nil
	}
	query, values := buildLocationInsert(productID, locs)
	_, err := tx.ExecContext(ctx, query, values...)
	return err
}

func (r *PGRepository) CreateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// New products go to the end of the supplier's manual ordering.
	var nextOrder int
	err = tx.GetContext(ctx, &nextOrder,
		`SELECT COALESCE(MAX(row_order), 0) + 1 FROM products WHERE supplier_id = $1`, supplierID)
	if err != nil {
		return 0, err
	}

	query := `
        INSERT INTO products (
            supplier_id, name, category, technology, type,
            power_kw, min_order, qty_mw, availability_days, stock_location,
            datasheet, panfile, ondfile, validity, price_ex_factory,
            attributes, row_order
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id
    `

	var newID int64
	err = tx.GetContext(ctx, &newID, query,
		supplierID, in.Name, in.Category, in.Technology, in.Type,
		in.PowerKW, in.MinOrder, in.QtyMW, in.AvailabilityDays, in.StockLocation,
		in.Datasheet, in.PanFile, in.OndFile, in.Validity, in.PriceExFactory,
		attrs, nextOrder,
	)
	if err != nil {
		return 0, err
	}

	if err := insertLocations(ctx, tx, newID, in.Locations); err != nil {
		return 0, err
	}

	return newID, tx.Commit()
}

func (r *PGRepository) UpdateProduct(ctx context.Context, supplierID int64, in *dto.ProductInput, attrs types.JSONText) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE products SET
            name = $1, category = $2, technology = $3, type = $4,
            power_kw = $5, min_order = $6, qty_mw = $7, availability_days = $8,
            stock_location = $9, datasheet = $10, panfile = $11, ondfile = $12,
            validity = $13, price_ex_factory = $14, attributes = $15
        WHERE id = $16 AND supplier_id = $17
    `

	res, err := tx.ExecContext(ctx, query,
		in.Name, in.Category, in.Technology, in.Type,
		in.PowerKW, in.MinOrder, in.QtyMW, in.AvailabilityDays,
		in.StockLocation, in.Datasheet, in.PanFile, in.OndFile,
		in.Validity, in.PriceExFactory, attrs,
		in.ID, supplierID,
	)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return supplier.ErrProductNotFound
	}

	// Destructive replace: wipe the old pricing set, re-insert the submitted one.
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_pricing WHERE product_id = $1`, in.ID); err != nil {
		return err
	}
	if err := insertLocations(ctx, tx, in.ID, in.Locations); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) DeleteProduct(ctx context.Context, supplierID, productID int64) error {
	// Pricing rows go with it via the FK cascade.
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND supplier_id = $2`, productID, supplierID)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return supplier.ErrProductNotFound
	}
	return nil
}

func (r *PGRepository) ReorderProducts(ctx context.Context, supplierID int64, items []dto.ReorderItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			`UPDATE products SET row_order = $1 WHERE id = $2 AND supplier_id = $3`,
			item.RowOrder, item.ID, supplierID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) UpdateProfile(ctx context.Context, supplierID int64, in *dto.ProfileInput) error {
	query := `
        UPDATE suppliers SET
            company_name = $1,
            phone = $2,
            website = $3,
            location = $4,
            about_us = $5,
            gallery = $6
        WHERE id = $7
    `
	_, err := r.DB.ExecContext(ctx, query,
		in.CompanyName, in.Phone, in.Website, in.Location, in.AboutUs,
		pq.Array(in.Gallery), supplierID,
	)
	return err
}
