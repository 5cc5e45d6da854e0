package entity

import "time"

// Company holds the contractor's own master data. It appears as the sender
// block and branding on every generated document.
type Company struct {
	ID        string
	Name      string
	Street    string
	ZipCode   string
	City      string
	Phone     string
	Email     string
	VATNumber string // e.g. CHE-123.456.789 MWST
	LogoURL   string // upload URL, e.g. /uploads/logo.png
	CreatedAt time.Time
	UpdatedAt time.Time
}
