package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Product is a catalog entry owned by one supplier. Module and inverter rows
// share the same shape; which columns are meaningful depends on category.
type Product struct {
	ID               int64          `db:"id" json:"id"`
	SupplierID       int64          `db:"supplier_id" json:"supplier_id"`
	Name             string         `db:"name" json:"name"`
	Category         string         `db:"category" json:"category"`
	Technology       *string        `db:"technology" json:"technology"`
	Type             *string        `db:"type" json:"type"`
	PowerKW          *float64       `db:"power_kw" json:"power_kw"`
	MinOrder         *string        `db:"min_order" json:"min_order"` // free text, e.g. "1 MWp"
	QtyMW            *float64       `db:"qty_mw" json:"qty_mw"`
	AvailabilityDays *int           `db:"availability_days" json:"availability_days"`
	StockLocation    *string        `db:"stock_location" json:"stock_location"`
	Datasheet        *string        `db:"datasheet" json:"datasheet"`
	PanFile          *string        `db:"panfile" json:"panfile"`
	OndFile          *string        `db:"ondfile" json:"ondfile"`
	Validity         *string        `db:"validity" json:"validity"`
	PriceExFactory   *float64       `db:"price_ex_factory" json:"price_ex_factory"`
	Attributes       types.JSONText `db:"attributes" json:"attributes"`
	RowOrder         int            `db:"row_order" json:"row_order"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

// PriceLocation is a per-state/city price override for a product.
type PriceLocation struct {
	ID        int64   `db:"id" json:"-"`
	ProductID int64   `db:"product_id" json:"-"`
	State     string  `db:"state" json:"state"`
	City      string  `db:"city" json:"city"`
	Price     float64 `db:"price" json:"price"`
}

// SupplierProduct is a dashboard row: the product plus its aggregated
// location prices as returned by json_agg.
type SupplierProduct struct {
	Product
	Locations types.JSONText `db:"locations" json:"locations"`
}

// MarketplaceRow is one aggregated row of the marketplace query. Locations is
// the grouped json_agg payload ('[]' when no pricing rows exist); FullCount is
// the window count of all rows matching the filters, before pagination.
type MarketplaceRow struct {
	Product
	SupplierName *string        `db:"supplier_name"`
	Locations    types.JSONText `db:"locations"`
	FullCount    int            `db:"full_count"`
}
