package router

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-management/internal/handlers"
	"github.com/yukikurage/project-management/internal/logger"
	"github.com/yukikurage/project-management/internal/middleware"
	"github.com/yukikurage/project-management/internal/services"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer needs. Nothing is looked up globally.
type Deps struct {
	DB             *gorm.DB
	CompanyService *services.CompanyService
	SessionStore   sessions.Store
	Templates      *template.Template
	Log            *logger.Logger
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(deps.Log), middleware.Recovery(deps.Log))
	r.Use(middleware.Sessions(deps.SessionStore))
	r.SetHTMLTemplate(deps.Templates)

	companyHandler := handlers.NewCompanyHandler(deps.CompanyService, deps.Log)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Log)
	loadCompany := middleware.LoadCompany(deps.CompanyService, deps.Log)

	r.GET("/health", healthHandler.Health)

	r.GET("/", companyHandler.ListCompanies)
	r.GET("/create", companyHandler.NewCompanyForm)
	r.POST("/create", companyHandler.CreateCompany)
	r.GET("/update/:id", loadCompany, companyHandler.EditCompanyForm)
	r.POST("/update/:id", loadCompany, companyHandler.UpdateCompany)
	r.GET("/delete/:id", loadCompany, companyHandler.DeleteCompany)

	return r
}
