package repository

import (
	"github.com/yukikurage/project-management/internal/models"
	"gorm.io/gorm"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// Add creates a membership; is_active takes its column default of 1.
func (r *GormMembershipRepository) Add(userID, teamID uint64) (*models.UserTeam, error) {
	member := &models.UserTeam{
		UserID:   userID,
		TeamID:   teamID,
		IsActive: models.MembershipActive,
	}
	if err := r.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// SetActive flips the is_active flag. Update is used instead of Save so a
// zero value is written rather than skipped.
func (r *GormMembershipRepository) SetActive(id uint64, active bool) error {
	flag := models.MembershipInactive
	if active {
		flag = models.MembershipActive
	}

	result := r.db.Model(&models.UserTeam{}).
		Where("id = ?", id).
		Update("is_active", flag)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByTeam lists memberships of a team
func (r *GormMembershipRepository) ListByTeam(teamID uint64, activeOnly bool) ([]models.UserTeam, error) {
	var members []models.UserTeam
	query := r.db.Where("team_id = ?", teamID)
	if activeOnly {
		query = query.Where("is_active = ?", models.MembershipActive)
	}
	if err := query.Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListByUser lists memberships of a user
func (r *GormMembershipRepository) ListByUser(userID uint64) ([]models.UserTeam, error) {
	var members []models.UserTeam
	if err := r.db.Where("user_id = ?", userID).
		Order("id").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Remove deletes a membership row
func (r *GormMembershipRepository) Remove(id uint64) error {
	return r.db.Delete(&models.UserTeam{}, id).Error
}
