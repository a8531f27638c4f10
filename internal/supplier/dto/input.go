package dto

import (
	"encoding/json"

	"github.com/jmoiron/sqlx/types"
)

type LocationInput struct {
	State string  `json:"state"`
	City  string  `json:"city"`
	Price float64 `json:"price"`
}

// ProductInput carries the named, editable product fields of a create or
// update action. Anything else in the payload is a supplier-defined custom
// attribute and ends up in the attributes bag via ExtractAttributes.
type ProductInput struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Technology       *string         `json:"technology"`
	Type             *string         `json:"type"`
	PowerKW          *float64        `json:"power_kw"`
	MinOrder         *string         `json:"min_order"`
	QtyMW            *float64        `json:"qty_mw"`
	AvailabilityDays *int            `json:"availability_days"`
	StockLocation    *string         `json:"stock_location"`
	Datasheet        *string         `json:"datasheet"`
	PanFile          *string         `json:"panfile"`
	OndFile          *string         `json:"ondfile"`
	Validity         *string         `json:"validity"`
	PriceExFactory   *float64        `json:"price_ex_factory"`
	Locations        []LocationInput `json:"locations"`
}

type ReorderItem struct {
	ID       int64 `json:"id"`
	RowOrder int   `json:"row_order"`
}

type ReorderInput struct {
	Items []ReorderItem `json:"items"`
}

type ProfileInput struct {
	CompanyName string   `json:"companyName"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Location    *string  `json:"location"`
	AboutUs     *string  `json:"aboutUs"`
	Gallery     []string `json:"gallery"`
}

// reservedProductKeys are the named fields of a product payload; every other
// key is a custom attribute.
var reservedProductKeys = map[string]struct{}{
	"id": {}, "supplierId": {}, "name": {}, "category": {}, "technology": {},
	"type": {}, "power_kw": {}, "min_order": {}, "qty_mw": {},
	"availability_days": {}, "stock_location": {}, "datasheet": {},
	"panfile": {}, "ondfile": {}, "validity": {}, "price_ex_factory": {},
	"locations": {},
}

// ExtractAttributes strips the named fields out of a raw product payload and
// returns the remainder as the JSON attributes bag. Malformed input degrades
// to an empty object.
func ExtractAttributes(raw []byte) types.JSONText {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return types.JSONText("{}")
	}
	for key := range reservedProductKeys {
		delete(fields, key)
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return types.JSONText("{}")
	}
	return types.JSONText(out)
}
