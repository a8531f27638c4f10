package dto

import "github.com/solarbazaar/marketplace-api/internal/model"

// Listing is the buyer-facing view of a product. Supplier-defined custom
// attributes live under CustomFields rather than being spread into the top
// level, so they can never shadow a reserved field.
type Listing struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Supplier     string                 `json:"supplier"`
	SupplierID   int64                  `json:"supplierId"`
	Category     string                 `json:"category"`
	Technology   *string                `json:"technology"`
	Type         *string                `json:"type"`
	Power        float64                `json:"power"`
	MOQ          *string                `json:"moq"`
	Availability *int                   `json:"availability"`
	Validity     *string                `json:"validity"`
	PriceEx      float64                `json:"priceEx"`
	Datasheet    *string                `json:"datasheet"`
	PanFile      *string                `json:"panfile"`
	OndFile      *string                `json:"ondfile"`
	Locations    []model.PriceLocation  `json:"locations"`
	CustomFields map[string]interface{} `json:"customFields"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

type SearchResponse struct {
	Success    bool       `json:"success"`
	Data       []Listing  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
