package entity

import "time"

// Customer is a billing recipient (private person or company).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	Street    string
	ZipCode   string
	City      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
