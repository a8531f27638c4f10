package dto

import "github.com/solarbazaar/marketplace-api/internal/model"

type Profile struct {
	CompanyName string   `json:"companyName"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Location    *string  `json:"location"`
	AboutUs     *string  `json:"aboutUs"`
	Gallery     []string `json:"gallery"`
}

type DashboardResponse struct {
	Products []model.SupplierProduct `json:"products"`
	Profile  Profile                 `json:"profile"`
}
