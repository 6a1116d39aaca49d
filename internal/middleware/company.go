package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-management/internal/errors"
	"github.com/yukikurage/project-management/internal/logger"
	"github.com/yukikurage/project-management/internal/models"
	"github.com/yukikurage/project-management/internal/services"
)

// ContextKeyCompany is where LoadCompany stores the company.
const ContextKeyCompany = "company"

// CompanyFinder looks a company up by ID.
type CompanyFinder interface {
	GetCompany(id uint64) (*models.Company, error)
}

// LoadCompany resolves the :id path parameter to a company. A malformed or
// unknown id ends the request with 404. Ids past the signed 64-bit range
// cannot exist in any store and are treated as unknown.
func LoadCompany(finder CompanyFinder, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 63)
		if err != nil {
			apierrors.NotFound(c, "Company not found")
			return
		}

		company, err := finder.GetCompany(id)
		if err != nil {
			if errors.Is(err, services.ErrCompanyNotFound) {
				apierrors.NotFound(c, "Company not found")
				return
			}
			log.Errorw("failed to load company", "company_id", id, "error", err)
			apierrors.InternalError(c, "")
			return
		}

		c.Set(ContextKeyCompany, company)
		c.Next()
	}
}

// GetCompany retrieves the company set by LoadCompany
func GetCompany(c *gin.Context) (*models.Company, bool) {
	value, exists := c.Get(ContextKeyCompany)
	if !exists {
		return nil, false
	}
	company, ok := value.(*models.Company)
	return company, ok
}
