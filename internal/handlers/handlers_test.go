package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/handlers"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router           *gin.Engine
	cfg              *config.Config
	expenseService   *MockExpenseService
	salaryService    *MockSalaryService
	employeeService  *MockEmployeeService
	dashService      *MockDashboardService
	profileService   *MockProfileService
	liabilityService *MockLiabilityService
	cashflowService  *MockCashflowService
	pdcService       *MockPDCService
	capitalService   *MockCapitalService
	userID           string
}

// generateTestToken creates a session JWT for testing.
func (suite *HandlersTestSuite) generateTestToken(userID, email string) string {
	signed, err := utils.GenerateJWT(userID, email, suite.cfg.JWTSecret, time.Hour, "bizbooks-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlersTestSuite) SetupTest() {
	decimal.MarshalJSONWithoutQuotes = true
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		SessionCookieName: "sb-access-token",
		IsProduction:      true,
	}
	suite.userID = uuid.NewString()

	suite.expenseService = new(MockExpenseService)
	suite.salaryService = new(MockSalaryService)
	suite.employeeService = new(MockEmployeeService)
	suite.dashService = new(MockDashboardService)
	suite.profileService = new(MockProfileService)
	suite.liabilityService = new(MockLiabilityService)
	suite.cashflowService = new(MockCashflowService)
	suite.pdcService = new(MockPDCService)
	suite.capitalService = new(MockCapitalService)

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Expense:   suite.expenseService,
		Liability: suite.liabilityService,
		Employee:  suite.employeeService,
		Salary:    suite.salaryService,
		Cashflow:  suite.cashflowService,
		PDC:       suite.pdcService,
		Capital:   suite.capitalService,
		Profile:   suite.profileService,
		Dashboard: suite.dashService,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	decimal.MarshalJSONWithoutQuotes = false
}

func (suite *HandlersTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, "owner@example.com"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) sampleExpense() *domain.Expense {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	return &domain.Expense{
		ID:     uuid.NewString(),
		UserID: suite.userID,
		ExpenseDetails: domain.ExpenseDetails{
			Category: domain.ExpenseRent,
			Amount:   decimal.RequireFromString("1200.50"),
			Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
}

// --- Tests ---

func (suite *HandlersTestSuite) TestHealth_IsPublic() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListExpenses_RequiresAuth() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/expenses", nil))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.expenseService.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListExpenses_SessionCookie() {
	suite.expenseService.On("ListExpenses", mock.AnythingOfType("*context.valueCtx"), suite.userID, domain.ExpenseFilter{}).
		Return([]domain.Expense{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.AddCookie(&http.Cookie{Name: suite.cfg.SessionCookieName, Value: suite.generateTestToken(suite.userID, "")})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListExpenses_FiltersAndShape() {
	expense := suite.sampleExpense()
	filter := domain.ExpenseFilter{Category: "rent", Month: "2024-03", Search: "office"}
	suite.expenseService.On("ListExpenses", mock.AnythingOfType("*context.valueCtx"), suite.userID, filter).
		Return([]domain.Expense{*expense}, nil).Once()

	w := suite.do(http.MethodGet, "/api/expenses?category=rent&date=2024-03&search=office", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var body struct {
		Data []map[string]any `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Data, 1)
	suite.Equal(expense.ID, body.Data[0]["id"])
	suite.Equal("2024-03-01", body.Data[0]["date"])
	suite.Equal(1200.5, body.Data[0]["amount"])
	suite.expenseService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListExpenses_InvalidMonth() {
	w := suite.do(http.MethodGet, "/api/expenses?date=2024-13", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.expenseService.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateExpense_Created() {
	expense := suite.sampleExpense()
	suite.expenseService.On("CreateExpense", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(in domain.ExpenseDetails) bool {
			return in.Category == domain.ExpenseRent &&
				in.Amount.Equal(decimal.RequireFromString("1200.50")) &&
				in.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				in.Notes == nil
		})).Return(expense, nil).Once()

	w := suite.do(http.MethodPost, "/api/expenses", `{"category":"rent","amount":1200.50,"date":"2024-03-01","notes":""}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"id":"`+expense.ID+`"`)
	suite.expenseService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateExpense_ValidationDetails() {
	w := suite.do(http.MethodPost, "/api/expenses", `{"category":"rent","amount":0,"date":"2024-02-30"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{
		"error": "Validation failed",
		"details": [
			{"field": "amount", "message": "Amount must be at least 0.01"},
			{"field": "date", "message": "Date must be a valid date"}
		]
	}`, w.Body.String())
	suite.expenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateExpense_MissingFields() {
	w := suite.do(http.MethodPost, "/api/expenses", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Details []apperrors.FieldError `json:"details"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]apperrors.FieldError{
		{Field: "category", Message: "Category is required"},
		{Field: "amount", Message: "Amount is required"},
		{Field: "date", Message: "Date is required"},
	}, body.Details)
}

func (suite *HandlersTestSuite) TestCreateExpense_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/expenses", `{"category":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
}

func (suite *HandlersTestSuite) TestCreateExpense_ServiceFailureIsGeneric() {
	suite.expenseService.On("CreateExpense", mock.Anything, suite.userID, mock.Anything).
		Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodPost, "/api/expenses", `{"category":"rent","amount":"10","date":"2024-03-01"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to create expense"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestUpdateExpense_NotFound() {
	id := uuid.NewString()
	suite.expenseService.On("UpdateExpense", mock.AnythingOfType("*context.valueCtx"), suite.userID, id, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/expenses/"+id, `{"category":"rent","amount":10,"date":"2024-03-01"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Expense not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteExpense_Success() {
	id := uuid.NewString()
	suite.expenseService.On("DeleteExpense", mock.AnythingOfType("*context.valueCtx"), suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/expenses/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateSalary_Duplicate() {
	employeeID := uuid.NewString()
	suite.salaryService.On("CreateSalary", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(in domain.SalaryInput) bool {
			return in.EmployeeID == employeeID && in.Month == 3 && in.Year == 2024 && in.Status == nil
		})).
		Return(nil, apperrors.NewConflictError("Salary record already exists for this employee, month, and year")).Once()

	w := suite.do(http.MethodPost, "/api/salaries",
		`{"employee_id":"`+employeeID+`","month":3,"year":2024,"amount":3000}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.JSONEq(`{"error":"Salary record already exists for this employee, month, and year"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateSalary_ForeignEmployee() {
	employeeID := uuid.NewString()
	suite.salaryService.On("CreateSalary", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.NewValidationFailedError("employee_id", "Employee not found")).Once()

	w := suite.do(http.MethodPost, "/api/salaries",
		`{"employee_id":"`+employeeID+`","month":3,"year":2024,"amount":3000}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Validation failed","details":[{"field":"employee_id","message":"Employee not found"}]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListSalaries_EmbedsEmployee() {
	position := "Engineer"
	salary := domain.Salary{
		ID:            uuid.NewString(),
		SalaryDetails: domain.SalaryDetails{EmployeeID: uuid.NewString(), Month: 3, Year: 2024, Amount: decimal.NewFromInt(3000)},
		Status:        domain.SalaryPaid,
		Employee:      &domain.EmployeeSummary{Name: "Ada", Position: &position},
	}
	month := 3
	suite.salaryService.On("ListSalaries", mock.Anything, suite.userID, domain.SalaryFilter{Month: &month}).
		Return([]domain.Salary{salary}, nil).Once()

	w := suite.do(http.MethodGet, "/api/salaries?month=3", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"employees":{"name":"Ada","position":"Engineer"}`)
}

func (suite *HandlersTestSuite) TestListSalaries_MonthOutOfRange() {
	w := suite.do(http.MethodGet, "/api/salaries?month=13", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteEmployee_Deactivates() {
	id := uuid.NewString()
	suite.employeeService.On("DeleteEmployee", mock.Anything, suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/employees/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.employeeService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListEmployees_ActiveFilter() {
	active := false
	suite.employeeService.On("ListEmployees", mock.Anything, suite.userID, domain.EmployeeFilter{Active: &active}).
		Return([]domain.Employee{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/employees?active=false", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetDashboard() {
	suite.dashService.On("GetDashboard", mock.AnythingOfType("*context.valueCtx"), suite.userID).Return(&domain.Dashboard{
		Stats: domain.DashboardStats{
			TotalExpenses:    decimal.RequireFromString("160.25"),
			TotalLiabilities: decimal.NewFromInt(400),
			TotalSalaries:    decimal.NewFromInt(3000),
			TotalCashflow:    decimal.NewFromInt(120),
			PendingPDC:       decimal.NewFromInt(500),
			CapitalInjected:  decimal.NewFromInt(10000),
		},
		RecentExpenses: []domain.Expense{},
		RecentSalaries: []domain.Salary{},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/dashboard", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":{
		"stats":{"totalExpenses":160.25,"totalLiabilities":400,"totalSalaries":3000,
			"totalCashflow":120,"pendingPDC":500,"capitalInjected":10000},
		"recentExpenses":[],"recentSalaries":[]}}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetDashboard_Failure() {
	suite.dashService.On("GetDashboard", mock.Anything, suite.userID).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/dashboard", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to load dashboard"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestProfile_NotFoundUntilSaved() {
	suite.profileService.On("GetProfile", mock.Anything, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/profile", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestProfile_UpdateUsesTokenEmail() {
	company := "Acme"
	email := "owner@example.com"
	suite.profileService.On("UpdateProfile", mock.Anything, suite.userID, &email,
		domain.ProfileDetails{CompanyName: &company}).
		Return(&domain.Profile{ID: suite.userID, Email: &email, CompanyName: &company}, nil).Once()

	w := suite.do(http.MethodPut, "/api/profile", `{"company_name":"Acme","full_name":"  "}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"company_name":"Acme"`)
	suite.profileService.AssertExpectations(suite.T())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
