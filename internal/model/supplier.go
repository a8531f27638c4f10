package model

import "github.com/lib/pq"

// Supplier is the company profile owning a set of products.
type Supplier struct {
	ID           int64          `db:"id" json:"id"`
	CompanyName  string         `db:"company_name" json:"company_name"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Phone        *string        `db:"phone" json:"phone"`
	Website      *string        `db:"website" json:"website"`
	Location     *string        `db:"location" json:"location"`
	AboutUs      *string        `db:"about_us" json:"about_us"`
	Gallery      pq.StringArray `db:"gallery" json:"gallery"`
}
