package repository

import (
	"github.com/yukikurage/project-management/internal/models"
	"gorm.io/gorm"
)

// GormCompanyRepository is a GORM implementation of CompanyRepository
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create inserts a new company
func (r *GormCompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(id uint64) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// List returns every company. No ORDER BY: the store decides.
func (r *GormCompanyRepository) List() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Update overwrites name and subscription plan of an existing company.
// It never inserts; a missing row yields gorm.ErrRecordNotFound.
func (r *GormCompanyRepository) Update(company *models.Company) error {
	result := r.db.Model(company).Select("name", "subscription_plan").Updates(company)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the company row. Dependent teams or users make the
// foreign-key constraint reject it; a missing row yields gorm.ErrRecordNotFound.
func (r *GormCompanyRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Company{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
