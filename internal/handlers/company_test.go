package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-management/internal/config"
	"github.com/yukikurage/project-management/internal/database"
	"github.com/yukikurage/project-management/internal/logger"
	"github.com/yukikurage/project-management/internal/middleware"
	"github.com/yukikurage/project-management/internal/models"
	"github.com/yukikurage/project-management/internal/repository"
	"github.com/yukikurage/project-management/internal/services"
	"github.com/yukikurage/project-management/internal/views"
	"gorm.io/gorm"
)

// CompanyHandlerTestSuite defines the test suite for CompanyHandler
type CompanyHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *CompanyHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *CompanyHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = database.Connect(&config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: ":memory:",
		DBLogLevel: "silent",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.Migrate(suite.db, logger.Nop()))

	companyService := services.NewCompanyService(repository.NewCompanyRepository(suite.db))
	suite.handler = NewCompanyHandler(companyService, logger.Nop())

	gin.SetMode(gin.TestMode)

	tmpl, err := views.Load()
	suite.Require().NoError(err)

	suite.router = gin.New()
	suite.router.SetHTMLTemplate(tmpl)
	suite.router.Use(sessions.Sessions(middleware.SessionCookieName, cookie.NewStore([]byte("secret"))))

	loadCompany := middleware.LoadCompany(companyService, logger.Nop())
	suite.router.GET("/", suite.handler.ListCompanies)
	suite.router.GET("/create", suite.handler.NewCompanyForm)
	suite.router.POST("/create", suite.handler.CreateCompany)
	suite.router.GET("/update/:id", loadCompany, suite.handler.EditCompanyForm)
	suite.router.POST("/update/:id", loadCompany, suite.handler.UpdateCompany)
	suite.router.GET("/delete/:id", loadCompany, suite.handler.DeleteCompany)
}

// TearDownTest runs after each test
func (suite *CompanyHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *CompanyHandlerTestSuite) createTestCompany(name, plan string) *models.Company {
	company := &models.Company{Name: name, SubscriptionPlan: plan}
	suite.Require().NoError(suite.db.Create(company).Error)
	return company
}

func (suite *CompanyHandlerTestSuite) countCompanies() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.Company{}).Count(&count).Error)
	return count
}

func (suite *CompanyHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (suite *CompanyHandlerTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	suite.router.ServeHTTP(w, req)
	return w
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// TestListCompanies_Empty tests the listing with no rows
func (suite *CompanyHandlerTestSuite) TestListCompanies_Empty() {
	w := suite.get("/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "No companies yet.")
}

// TestListCompanies_ShowsRows tests that id, name and plan are rendered
func (suite *CompanyHandlerTestSuite) TestListCompanies_ShowsRows() {
	company := suite.createTestCompany("Acme", "pro")

	w := suite.get("/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(suite.T(), body, "<td>Acme</td>")
	assert.Contains(suite.T(), body, "<td>pro</td>")
	assert.Contains(suite.T(), body, "/update/"+formatID(company.ID))
}

// TestNewCompanyForm tests the create form
func (suite *CompanyHandlerTestSuite) TestNewCompanyForm() {
	w := suite.get("/create")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `name="subscription_plan"`)
}

// TestCreateCompany_Success tests create then list
func (suite *CompanyHandlerTestSuite) TestCreateCompany_Success() {
	w := suite.postForm("/create", url.Values{
		"name":              {"Acme"},
		"subscription_plan": {"pro"},
	})

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	var companies []models.Company
	suite.Require().NoError(suite.db.Find(&companies).Error)
	suite.Require().Len(companies, 1)
	assert.Equal(suite.T(), "Acme", companies[0].Name)
	assert.Equal(suite.T(), "pro", companies[0].SubscriptionPlan)
	assert.NotZero(suite.T(), companies[0].ID)
}

// TestCreateCompany_MissingField tests a submission without subscription_plan
func (suite *CompanyHandlerTestSuite) TestCreateCompany_MissingField() {
	w := suite.postForm("/create", url.Values{"name": {"Acme"}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "subscription_plan")
	assert.Equal(suite.T(), int64(0), suite.countCompanies())
}

// TestCreateCompany_EmptyValuesAccepted tests that present-but-empty fields are stored
func (suite *CompanyHandlerTestSuite) TestCreateCompany_EmptyValuesAccepted() {
	w := suite.postForm("/create", url.Values{
		"name":              {""},
		"subscription_plan": {""},
	})

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), int64(1), suite.countCompanies())
}

// TestEditCompanyForm_Success tests the pre-filled edit form
func (suite *CompanyHandlerTestSuite) TestEditCompanyForm_Success() {
	company := suite.createTestCompany("Acme", "pro")

	w := suite.get("/update/" + formatID(company.ID))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `value="Acme"`)
	assert.Contains(suite.T(), w.Body.String(), `value="pro"`)
}

// TestEditCompanyForm_NotFound tests that an unknown id is a 404 and creates nothing
func (suite *CompanyHandlerTestSuite) TestEditCompanyForm_NotFound() {
	w := suite.get("/update/999")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), int64(0), suite.countCompanies())
}

// TestUpdateCompany_Success tests changing the plan without touching the name
func (suite *CompanyHandlerTestSuite) TestUpdateCompany_Success() {
	company := suite.createTestCompany("Acme", "pro")

	w := suite.postForm("/update/"+formatID(company.ID), url.Values{
		"name":              {"Acme"},
		"subscription_plan": {"enterprise"},
	})

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	var reloaded models.Company
	suite.Require().NoError(suite.db.First(&reloaded, company.ID).Error)
	assert.Equal(suite.T(), "enterprise", reloaded.SubscriptionPlan)
	assert.Equal(suite.T(), "Acme", reloaded.Name)
}

// TestUpdateCompany_NotFound tests posting to an unknown id
func (suite *CompanyHandlerTestSuite) TestUpdateCompany_NotFound() {
	w := suite.postForm("/update/999", url.Values{
		"name":              {"Ghost"},
		"subscription_plan": {"free"},
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), int64(0), suite.countCompanies())
}

// TestUpdateCompany_MissingField tests that an absent key is rejected without writing
func (suite *CompanyHandlerTestSuite) TestUpdateCompany_MissingField() {
	company := suite.createTestCompany("Acme", "pro")

	w := suite.postForm("/update/"+formatID(company.ID), url.Values{"subscription_plan": {"free"}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var reloaded models.Company
	suite.Require().NoError(suite.db.First(&reloaded, company.ID).Error)
	assert.Equal(suite.T(), "pro", reloaded.SubscriptionPlan)
}

// TestDeleteCompany_Success tests deleting a company without dependents
func (suite *CompanyHandlerTestSuite) TestDeleteCompany_Success() {
	company := suite.createTestCompany("Acme", "pro")

	w := suite.get("/delete/" + formatID(company.ID))

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	w = suite.get("/update/" + formatID(company.ID))
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteCompany_WithTeam tests that a referenced company survives a delete attempt
func (suite *CompanyHandlerTestSuite) TestDeleteCompany_WithTeam() {
	company := suite.createTestCompany("Acme", "pro")
	team := &models.Team{Name: "Core", CompanyID: company.ID}
	suite.Require().NoError(suite.db.Create(team).Error)

	w := suite.get("/delete/" + formatID(company.ID))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.NoError(suite.T(), suite.db.First(&models.Company{}, company.ID).Error)
	assert.NoError(suite.T(), suite.db.First(&models.Team{}, team.ID).Error)
}

// TestDeleteCompany_NotFound tests deleting an unknown id
func (suite *CompanyHandlerTestSuite) TestDeleteCompany_NotFound() {
	w := suite.get("/delete/999")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestEditCompanyForm_NotInContext tests calling the handler without LoadCompany
func (suite *CompanyHandlerTestSuite) TestEditCompanyForm_NotInContext() {
	tmpl, err := views.Load()
	suite.Require().NoError(err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/update/:id", suite.handler.EditCompanyForm)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/update/1", nil))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

// TestSuite runs the test suite
func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
