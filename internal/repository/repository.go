package repository

import (
	"github.com/yukikurage/project-management/internal/models"
)

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	// Create inserts a new company
	Create(company *models.Company) error

	// FindByID finds a company by ID
	FindByID(id uint64) (*models.Company, error)

	// List returns every company in store order
	List() ([]models.Company, error)

	// Update overwrites name and subscription plan of an existing company
	Update(company *models.Company) error

	// Delete removes a company row; gorm.ErrRecordNotFound if absent
	Delete(id uint64) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uint64) (*models.Team, error)

	// ListByCompany finds teams where company_id = companyID
	ListByCompany(companyID uint64) ([]models.Team, error)

	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)

	// ListByCompany finds users where company_id = companyID
	ListByCompany(companyID uint64) ([]models.User, error)

	Delete(id uint64) error
}

// MembershipRepository defines the interface for user/team membership access
type MembershipRepository interface {
	// Add creates an active membership
	Add(userID, teamID uint64) (*models.UserTeam, error)

	// SetActive flips the is_active flag of a membership
	SetActive(id uint64, active bool) error

	// ListByTeam lists memberships of a team, optionally only active ones
	ListByTeam(teamID uint64, activeOnly bool) ([]models.UserTeam, error)

	// ListByUser lists memberships of a user
	ListByUser(userID uint64) ([]models.UserTeam, error)

	Remove(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64) (*models.Task, error)

	// ListByTeam finds tasks where team_id = teamID
	ListByTeam(teamID uint64) ([]models.Task, error)

	// UpdateStatus sets a new status and refreshes updated_at
	UpdateStatus(id uint64, status string) error

	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error

	// ListByTask finds comments on a task, oldest first
	ListByTask(taskID uint64) ([]models.Comment, error)

	// ListByUser finds comments written by a user, oldest first
	ListByUser(userID uint64) ([]models.Comment, error)

	Delete(id uint64) error
}
