package entity

import "time"

// User is an API account (office staff). Role drives coarse authorization
// in the HTTP layer: "admin" | "office" | "worker".
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
