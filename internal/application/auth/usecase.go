// Package auth implements registration and login for API accounts.
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
	"github.com/wattwerk/wattwerk-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase registration and login. Accounts belong to the single company of
// the deployment; the company ID is baked in at construction.
type UseCase struct {
	userRepo  repository.UserRepository
	companyID string
	jwtCfg    JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, companyID string, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, companyID: companyID, jwtCfg: jwtCfg}
}

// Register hashes the password with bcrypt and persists the account.
// Returns domain.ErrDuplicate when the email is taken.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    uc.companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.tokenResponse(user)
}

// Login verifies the credentials and returns a signed token.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenResponse(user)
}

func (uc *UseCase) tokenResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := &dto.AuthResponse{Token: token}
	resp.User.ID = user.ID
	resp.User.Email = user.Email
	resp.User.Role = user.Role
	return resp, nil
}
