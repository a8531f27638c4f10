package usecase

import (
	"testing"

	"github.com/jmoiron/sqlx/types"
	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
	"github.com/solarbazaar/marketplace-api/internal/model"
)

func row(basePrice *float64, locations string) *model.MarketplaceRow {
	name := "Acme Solar"
	return &model.MarketplaceRow{
		Product: model.Product{
			ID:             1,
			Name:           "540W Mono PERC",
			SupplierID:     7,
			Category:       "module",
			PriceExFactory: basePrice,
			Attributes:     types.JSONText("{}"),
		},
		SupplierName: &name,
		Locations:    types.JSONText(locations),
	}
}

func fp(v float64) *float64 { return &v }

func TestBuildListingDisplayPrice(t *testing.T) {
	tests := []struct {
		name      string
		base      *float64
		locations string
		want      float64
	}{
		{"base only", fp(10), "[]", 10},
		{"no price at all", nil, "[]", 0},
		{"location undercuts base", fp(20), `[{"state":"MH","city":"Pune","price":5}]`, 5},
		{"base beats locations", fp(3), `[{"state":"MH","city":"Pune","price":5}]`, 3},
		{"nil base adopts location", nil, `[{"state":"MH","city":"Pune","price":7}]`, 7},
		{"zero base adopts location", fp(0), `[{"state":"MH","city":"Pune","price":9}]`, 9},
		{"lowest of several locations", fp(0), `[{"state":"MH","city":"Pune","price":9},{"state":"GJ","city":"Surat","price":4}]`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildListing(row(tt.base, tt.locations))
			if got.PriceEx != tt.want {
				t.Errorf("PriceEx = %v, want %v", got.PriceEx, tt.want)
			}
		})
	}
}

func TestBuildListingSupplierFallback(t *testing.T) {
	r := row(fp(10), "[]")
	r.SupplierName = nil

	got := buildListing(r)
	if got.Supplier != "Unknown Supplier" {
		t.Errorf("Supplier = %q, want Unknown Supplier", got.Supplier)
	}
}

func TestBuildListingLocationsNeverNil(t *testing.T) {
	got := buildListing(row(fp(10), "[]"))
	if got.Locations == nil {
		t.Error("Locations must be an empty slice, not nil")
	}
	if len(got.Locations) != 0 {
		t.Errorf("len(Locations) = %d, want 0", len(got.Locations))
	}
}

func TestBuildListingCustomFields(t *testing.T) {
	r := row(fp(10), "[]")
	r.Attributes = types.JSONText(`{"warranty":"25 years","frame":"silver"}`)

	got := buildListing(r)
	if got.CustomFields["warranty"] != "25 years" {
		t.Errorf("CustomFields[warranty] = %v", got.CustomFields["warranty"])
	}
	if got.CustomFields["frame"] != "silver" {
		t.Errorf("CustomFields[frame] = %v", got.CustomFields["frame"])
	}
}

func TestBuildListingMalformedAttributes(t *testing.T) {
	r := row(fp(10), "[]")
	r.Attributes = types.JSONText(`{not json`)

	got := buildListing(r)
	if len(got.CustomFields) != 0 {
		t.Errorf("malformed attributes should yield an empty map, got %v", got.CustomFields)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		wantPages  int
	}{
		{"15 items over limit 12", 2, 12, 15, 2},
		{"exact multiple", 1, 12, 24, 2},
		{"zero matches", 1, 12, 0, 0},
		{"single page", 1, 12, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newPagination(tt.page, tt.limit, tt.total)
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, tt.total)
			}
			if got.Page != tt.page || got.Limit != tt.limit {
				t.Errorf("page/limit = %d/%d, want %d/%d", got.Page, got.Limit, tt.page, tt.limit)
			}
		})
	}
}

func TestSearchFiltersNormalize(t *testing.T) {
	f := &dto.SearchFilters{Page: 0, PageSize: 0, Sort: ""}
	f.Normalize()

	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
	if f.PageSize != dto.DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", f.PageSize, dto.DefaultPageSize)
	}
	if f.Sort != "newest" {
		t.Errorf("Sort = %q, want newest", f.Sort)
	}

	f = &dto.SearchFilters{Page: 3, PageSize: 5000}
	f.Normalize()
	if f.PageSize != dto.MaxPageSize {
		t.Errorf("PageSize = %d, want cap %d", f.PageSize, dto.MaxPageSize)
	}
}
