package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-management/internal/errors"
	"github.com/yukikurage/project-management/internal/logger"
	"github.com/yukikurage/project-management/internal/middleware"
	"github.com/yukikurage/project-management/internal/services"
)

// Form field names shared by the create and update forms.
const (
	formFieldName             = "name"
	formFieldSubscriptionPlan = "subscription_plan"
)

type CompanyHandler struct {
	companyService *services.CompanyService
	log            *logger.Logger
}

func NewCompanyHandler(companyService *services.CompanyService, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		log:            log,
	}
}

// ListCompanies renders every company
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies()
	if err != nil {
		h.log.Errorw("failed to list companies", "error", err)
		apierrors.InternalError(c, "")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"companies": companies,
		"flashes":   popFlashes(c, h.log),
	})
}

// NewCompanyForm renders the empty create form
func (h *CompanyHandler) NewCompanyForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{
		"title": "Add company",
	})
}

// CreateCompany stores the submitted company and redirects to the listing
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	input, ok := bindCompanyForm(c)
	if !ok {
		return
	}

	company, err := h.companyService.CreateCompany(input)
	if err != nil {
		h.log.Errorw("failed to create company", "error", err)
		apierrors.InternalError(c, "")
		return
	}

	h.log.Infow("company created", "company_id", company.ID)
	addFlash(c, h.log, fmt.Sprintf("Company %q created.", company.Name))
	c.Redirect(http.StatusFound, "/")
}

// EditCompanyForm renders the update form pre-filled from the company
// loaded by middleware.LoadCompany
func (h *CompanyHandler) EditCompanyForm(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apierrors.InternalError(c, "Company not found in context")
		return
	}

	c.HTML(http.StatusOK, "update.html", gin.H{
		"title":   "Edit company",
		"company": company,
	})
}

// UpdateCompany overwrites the company with the submitted fields
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apierrors.InternalError(c, "Company not found in context")
		return
	}

	input, ok := bindCompanyForm(c)
	if !ok {
		return
	}

	updated, err := h.companyService.UpdateCompany(company, input)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			apierrors.NotFound(c, "Company not found")
			return
		}
		h.log.Errorw("failed to update company", "company_id", company.ID, "error", err)
		apierrors.InternalError(c, "")
		return
	}

	addFlash(c, h.log, fmt.Sprintf("Company %q updated.", updated.Name))
	c.Redirect(http.StatusFound, "/")
}

// DeleteCompany removes the company. A company still referenced by teams or
// users cannot be deleted and yields a 500 page.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apierrors.InternalError(c, "Company not found in context")
		return
	}

	if err := h.companyService.DeleteCompany(company); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			apierrors.NotFound(c, "Company not found")
			return
		}
		h.log.Errorw("failed to delete company", "company_id", company.ID, "error", err)
		apierrors.InternalError(c, "")
		return
	}

	h.log.Infow("company deleted", "company_id", company.ID)
	addFlash(c, h.log, fmt.Sprintf("Company %q deleted.", company.Name))
	c.Redirect(http.StatusFound, "/")
}

// bindCompanyForm reads both fields verbatim. An absent key is a 400;
// an empty value is accepted.
func bindCompanyForm(c *gin.Context) (services.CompanyInput, bool) {
	name, ok := c.GetPostForm(formFieldName)
	if !ok {
		apierrors.BadRequest(c, "Missing form field: "+formFieldName)
		return services.CompanyInput{}, false
	}

	plan, ok := c.GetPostForm(formFieldSubscriptionPlan)
	if !ok {
		apierrors.BadRequest(c, "Missing form field: "+formFieldSubscriptionPlan)
		return services.CompanyInput{}, false
	}

	return services.CompanyInput{
		Name:             name,
		SubscriptionPlan: plan,
	}, true
}
