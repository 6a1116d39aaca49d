package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-management/internal/models"
	"github.com/yukikurage/project-management/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

// CompanyService provides business logic for company operations.
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// CompanyInput carries the submitted form fields. Values are stored verbatim.
type CompanyInput struct {
	Name             string
	SubscriptionPlan string
}

// ListCompanies returns every company.
func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	companies, err := s.companyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetCompany returns a company or ErrCompanyNotFound.
func (s *CompanyService) GetCompany(id uint64) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}

// CreateCompany inserts a new company. Resubmitting creates a duplicate.
func (s *CompanyService) CreateCompany(input CompanyInput) (*models.Company, error) {
	company := &models.Company{
		Name:             input.Name,
		SubscriptionPlan: input.SubscriptionPlan,
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

// UpdateCompany overwrites name and subscription plan of an already loaded
// company. Last write wins; a row deleted meanwhile gives ErrCompanyNotFound.
func (s *CompanyService) UpdateCompany(company *models.Company, input CompanyInput) (*models.Company, error) {
	company.Name = input.Name
	company.SubscriptionPlan = input.SubscriptionPlan
	if err := s.companyRepo.Update(company); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}

// DeleteCompany removes an already loaded company. Dependent teams or users
// make the store reject the delete; that error is returned wrapped.
func (s *CompanyService) DeleteCompany(company *models.Company) error {
	if err := s.companyRepo.Delete(company.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}
