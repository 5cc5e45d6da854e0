package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// UserRepository persistence for API accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
