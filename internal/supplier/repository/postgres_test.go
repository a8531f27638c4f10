package repository

import (
	"strings"
	"testing"

	"github.com/solarbazaar/marketplace-api/internal/supplier/dto"
)

func TestBuildLocationInsert(t *testing.T) {
	locs := []dto.LocationInput{
		{State: "Maharashtra", City: "Pune", Price: 100},
		{State: "Gujarat", City: "Surat", Price: 95},
	}

	query, values := buildLocationInsert(42, locs)

	if !strings.HasPrefix(query, "INSERT INTO product_pricing (product_id, state, city, price) VALUES ") {
		t.Errorf("query = %q", query)
	}
	if !strings.Contains(query, "($1, $2, $3, $4),($5, $6, $7, $8)") {
		t.Errorf("placeholder layout wrong: %q", query)
	}

	if len(values) != 8 {
		t.Fatalf("len(values) = %d, want 8", len(values))
	}
	if values[0] != int64(42) || values[4] != int64(42) {
		t.Errorf("product id not bound per row: %v", values)
	}
	if values[1] != "Maharashtra" || values[6] != "Surat" || values[7] != 95.0 {
		t.Errorf("values = %v", values)
	}
}

func TestBuildLocationInsertSingleRow(t *testing.T) {
	query, values := buildLocationInsert(7, []dto.LocationInput{{State: "X", City: "Y", Price: 100}})

	if !strings.HasSuffix(query, "($1, $2, $3, $4)") {
		t.Errorf("query = %q", query)
	}
	if len(values) != 4 {
		t.Errorf("len(values) = %d, want 4", len(values))
	}
}
