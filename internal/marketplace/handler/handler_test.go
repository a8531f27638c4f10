package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/solarbazaar/marketplace-api/internal/marketplace/dto"
	"go.uber.org/zap"
)

type stubUseCase struct {
	listings   []dto.Listing
	pagination dto.Pagination
	err        error
	gotFilters *dto.SearchFilters
}

func (s *stubUseCase) Search(_ context.Context, f *dto.SearchFilters) ([]dto.Listing, dto.Pagination, error) {
	s.gotFilters = f
	return s.listings, s.pagination, s.err
}

func newTestApp(uc *stubUseCase) *fiber.App {
	app := fiber.New()
	h := NewMarketplaceHandler(uc, zap.NewNop())
	app.Get("/api/marketplace", h.Search)
	return app
}

func TestSearchEnvelope(t *testing.T) {
	uc := &stubUseCase{
		listings:   []dto.Listing{{ID: 1, Name: "540W Mono PERC", Supplier: "Acme Solar"}},
		pagination: dto.Pagination{Page: 2, Limit: 12, TotalItems: 15, TotalPages: 2},
	}
	app := newTestApp(uc)

	req := httptest.NewRequest("GET", "/api/marketplace?q=mono&page=2&limit=12&minPrice=10&minQty=0.5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if len(body.Data) != 1 || body.Data[0].Name != "540W Mono PERC" {
		t.Errorf("data = %+v", body.Data)
	}
	if body.Pagination.TotalPages != 2 {
		t.Errorf("totalPages = %d, want 2", body.Pagination.TotalPages)
	}

	f := uc.gotFilters
	if f.Query != "mono" || f.Page != 2 || f.PageSize != 12 {
		t.Errorf("filters = %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 10 {
		t.Errorf("MinPrice = %v, want 10", f.MinPrice)
	}
	if f.MaxPrice != nil {
		t.Errorf("MaxPrice = %v, want nil", f.MaxPrice)
	}
	if f.MinQty != 0.5 {
		t.Errorf("MinQty = %v, want 0.5", f.MinQty)
	}
}

func TestSearchFailure(t *testing.T) {
	uc := &stubUseCase{err: errors.New("pq: connection refused")}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/marketplace", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Internal detail must not leak.
	if body["error"] != "Failed to fetch market data" {
		t.Errorf("error = %q", body["error"])
	}
}
