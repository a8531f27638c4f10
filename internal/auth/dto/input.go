package dto

type RegisterInput struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token      string `json:"token"`
	SupplierID int64  `json:"supplierId"`
}
