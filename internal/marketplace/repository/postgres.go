package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
	"github.com/solarbazaar/marketplace-api/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// buildFilters compiles the optional search parameters into an AND-joined
// predicate list with positional placeholders and the matching bound values.
// Every user-supplied value is bound, never interpolated.
func buildFilters(f *dto.SearchFilters) ([]string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR s.company_name ILIKE $%d)", n, n))
	}

	if f.Category != "" && f.Category != dto.AllSentinel {
		args = append(args, f.Category)
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", len(args)))
	}

	if f.Technology != "" && f.Technology != dto.AllSentinel {
		args = append(args, "%"+f.Technology+"%")
		conditions = append(conditions, fmt.Sprintf("p.technology ILIKE $%d", len(args)))
	}

	// min_order is free text ("1 MWp"); strip everything that is not a digit
	// or a dot and compare numerically. Rows whose MOQ yields nothing drop
	// out of this filter: NULL <= x is never true.
	if f.MinQty > 0 {
		args = append(args, f.MinQty)
		conditions = append(conditions, fmt.Sprintf(
			"(NULLIF(regexp_replace(p.min_order, '[^0-9.]', '', 'g'), '')::numeric) <= $%d", len(args)))
	}

	if f.Location != "" && f.Location != dto.AllSentinel {
		args = append(args, "%"+f.Location+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_pricing pp WHERE pp.product_id = p.id AND (pp.city ILIKE $%d OR pp.state ILIKE $%d))", n, n))
	}

	// A product matches the price range through its base price or through any
	// of its location prices. A NULL base price can still match via the
	// location branch.
	if f.MinPrice != nil || f.MaxPrice != nil {
		base := "p.price_ex_factory IS NOT NULL"
		if f.MinPrice != nil {
			args = append(args, *f.MinPrice)
			base += fmt.Sprintf(" AND p.price_ex_factory >= $%d", len(args))
		}
		if f.MaxPrice != nil {
			args = append(args, *f.MaxPrice)
			base += fmt.Sprintf(" AND p.price_ex_factory <= $%d", len(args))
		}

		loc := "pp.product_id = p.id"
		if f.MinPrice != nil {
			args = append(args, *f.MinPrice)
			loc += fmt.Sprintf(" AND pp.price >= $%d", len(args))
		}
		if f.MaxPrice != nil {
			args = append(args, *f.MaxPrice)
			loc += fmt.Sprintf(" AND pp.price <= $%d", len(args))
		}

		conditions = append(conditions, fmt.Sprintf(
			"((%s) OR EXISTS (SELECT 1 FROM product_pricing pp WHERE %s))", base, loc))
	}

	return conditions, args
}

// orderClause maps a sort key to its ORDER BY. Effective-price sorting prefers
// location prices over the base price, NULLs last; unknown keys fall back to
// newest-id-first.
func orderClause(sort string) string {
	switch sort {
	case "price_asc":
		return "ORDER BY COALESCE((SELECT MIN(price) FROM product_pricing WHERE product_id = p.id), p.price_ex_factory) ASC NULLS LAST"
	case "price_desc":
		return "ORDER BY COALESCE((SELECT MAX(price) FROM product_pricing WHERE product_id = p.id), p.price_ex_factory) DESC NULLS LAST"
	case "newest":
		return "ORDER BY p.created_at DESC"
	default:
		return "ORDER BY p.id DESC"
	}
}

func (r *PGRepository) Search(ctx context.Context, f *dto.SearchFilters) ([]model.MarketplaceRow, int, error) {
	conditions, args := buildFilters(f)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, f.PageSize)
	limitIdx := len(args)
	args = append(args, (f.Page-1)*f.PageSize)
	offsetIdx := len(args)

	query := fmt.Sprintf(`
        SELECT
            p.id,
            p.name,
            s.company_name AS supplier_name,
            p.supplier_id,
            p.category,
            p.technology,
            p.type,
            p.power_kw,
            p.min_order,
            p.qty_mw,
            p.availability_days,
            p.validity,
            p.datasheet,
            p.panfile,
            p.ondfile,
            p.price_ex_factory,
            p.attributes,
            COALESCE(
                json_agg(
                    json_build_object('state', pp.state, 'city', pp.city, 'price', pp.price)
                ) FILTER (WHERE pp.id IS NOT NULL),
                '[]'
            ) AS locations,
            COUNT(*) OVER() AS full_count
        FROM products p
        LEFT JOIN suppliers s ON p.supplier_id = s.id
        LEFT JOIN product_pricing pp ON p.id = pp.product_id
        %s
        GROUP BY p.id, s.company_name
        %s
        LIMIT $%d OFFSET $%d
    `, whereClause, orderClause(f.Sort), limitIdx, offsetIdx)

	var rows []model.MarketplaceRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	// full_count is only readable off a non-empty page; zero matches means
	// total zero by definition.
	total := 0
	if len(rows) > 0 {
		total = rows[0].FullCount
	}

	return rows, total, nil
}
