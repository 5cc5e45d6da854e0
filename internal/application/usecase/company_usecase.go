// Package usecase holds the straightforward CRUD use cases around master
// data: company, customers, projects, employees, catalog, material and time
// entries. Billing and document generation live in their own packages.
package usecase

import (
	"time"

	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// CompanyUseCase reads and edits the contractor's master data.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get returns the company master data.
func (uc *CompanyUseCase) Get(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update edits name, address, contact, VAT number and logo.
func (uc *CompanyUseCase) Update(companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.Name
	company.Street = in.Street
	company.ZipCode = in.ZipCode
	company.City = in.City
	company.Phone = in.Phone
	company.Email = in.Email
	company.VATNumber = in.VATNumber
	company.LogoURL = in.LogoURL
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Street:    c.Street,
		ZipCode:   c.ZipCode,
		City:      c.City,
		Phone:     c.Phone,
		Email:     c.Email,
		VATNumber: c.VATNumber,
		LogoURL:   c.LogoURL,
		UpdatedAt: c.UpdatedAt,
	}
}
