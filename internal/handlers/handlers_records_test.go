package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Liabilities ---

func (suite *HandlersTestSuite) TestCreateLiability_Created() {
	liability := &domain.Liability{
		ID:     uuid.NewString(),
		UserID: suite.userID,
		LiabilityDetails: domain.LiabilityDetails{
			Type: domain.LiabilityLoan, Name: "Bank loan",
			Amount: decimal.NewFromInt(5000), OutstandingAmount: decimal.NewFromInt(4200),
		},
	}
	suite.liabilityService.On("CreateLiability", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(in domain.LiabilityDetails) bool {
			return in.Type == domain.LiabilityLoan && in.Name == "Bank loan" &&
				in.OutstandingAmount.Equal(decimal.NewFromInt(4200)) &&
				!in.InterestRate.Valid && in.DueDate == nil
		})).Return(liability, nil).Once()

	w := suite.do(http.MethodPost, "/api/liabilities",
		`{"type":"loan","name":"Bank loan","amount":5000,"outstanding_amount":4200,"interest_rate":""}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"outstanding_amount":4200`)
	suite.liabilityService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateLiability_NameMustBeText() {
	w := suite.do(http.MethodPost, "/api/liabilities",
		`{"type":"loan","name":true,"amount":5000,"outstanding_amount":0}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Validation failed","details":[{"field":"name","message":"Name must be text"}]}`, w.Body.String())
	suite.liabilityService.AssertNotCalled(suite.T(), "CreateLiability", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestUpdateLiability_NotFound() {
	id := uuid.NewString()
	suite.liabilityService.On("UpdateLiability", mock.AnythingOfType("*context.valueCtx"), suite.userID, id, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/liabilities/"+id,
		`{"type":"loan","name":"Bank loan","amount":5000,"outstanding_amount":4200}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Liability not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteLiability_Success() {
	id := uuid.NewString()
	suite.liabilityService.On("DeleteLiability", mock.AnythingOfType("*context.valueCtx"), suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/liabilities/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

// --- Cashflow ---

func (suite *HandlersTestSuite) TestListCashflow_Filters() {
	filter := domain.CashflowFilter{Type: "inflow", Month: "2024-03", Search: "invoice"}
	suite.cashflowService.On("ListCashflows", mock.AnythingOfType("*context.valueCtx"), suite.userID, filter).
		Return([]domain.Cashflow{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/cashflow?type=inflow&date=2024-03&search=invoice", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[]}`, w.Body.String())
	suite.cashflowService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateCashflow_Created() {
	entry := &domain.Cashflow{
		ID:     uuid.NewString(),
		UserID: suite.userID,
		CashflowDetails: domain.CashflowDetails{
			Type: domain.CashflowInflow, Category: "Sales", Amount: decimal.NewFromInt(100), Date: day(2024, 3, 2),
		},
	}
	suite.cashflowService.On("CreateCashflow", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(in domain.CashflowDetails) bool {
			return in.Type == domain.CashflowInflow && in.Category == "Sales" &&
				in.Date.Equal(day(2024, 3, 2)) && in.Description == nil
		})).Return(entry, nil).Once()

	w := suite.do(http.MethodPost, "/api/cashflow", `{"type":"inflow","category":"Sales","amount":100,"date":"2024-03-02"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"date":"2024-03-02"`)
	suite.cashflowService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateCashflow_NotFound() {
	id := uuid.NewString()
	suite.cashflowService.On("UpdateCashflow", mock.AnythingOfType("*context.valueCtx"), suite.userID, id, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/cashflow/"+id, `{"type":"outflow","category":"Rent","amount":30,"date":"2024-03-02"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Cashflow entry not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteCashflow_Success() {
	id := uuid.NewString()
	suite.cashflowService.On("DeleteCashflow", mock.AnythingOfType("*context.valueCtx"), suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/cashflow/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

// --- Post-dated cheques ---

func (suite *HandlersTestSuite) TestListPDC_StatusFilter() {
	cheque := domain.PDC{
		ID: uuid.NewString(),
		PDCDetails: domain.PDCDetails{
			ChequeNumber: "000123", BankName: "Acme Bank", Amount: decimal.NewFromInt(500),
			IssueDate: day(2024, 3, 1), DueDate: day(2024, 4, 1),
		},
		Status: domain.PDCPending,
	}
	suite.pdcService.On("ListPDCs", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		domain.PDCFilter{Status: "pending", BankName: "Acme Bank"}).
		Return([]domain.PDC{cheque}, nil).Once()

	w := suite.do(http.MethodGet, "/api/pdc?status=pending&bank_name=Acme+Bank", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"pending"`)
	suite.Contains(w.Body.String(), `"due_date":"2024-04-01"`)
}

func (suite *HandlersTestSuite) TestCreatePDC_Created() {
	cheque := &domain.PDC{ID: uuid.NewString(), UserID: suite.userID, Status: domain.PDCPending}
	suite.pdcService.On("CreatePDC", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(in domain.PDCInput) bool {
			return in.ChequeNumber == "000123" && in.BankName == "Acme Bank" &&
				in.Status == nil && in.DueDate.Equal(day(2024, 4, 1))
		})).Return(cheque, nil).Once()

	w := suite.do(http.MethodPost, "/api/pdc",
		`{"cheque_number":"000123","bank_name":"Acme Bank","amount":500,"issue_date":"2024-03-01","due_date":"2024-04-01"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.pdcService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdatePDC_NotFound() {
	id := uuid.NewString()
	suite.pdcService.On("UpdatePDC", mock.AnythingOfType("*context.valueCtx"), suite.userID, id,
		mock.MatchedBy(func(in domain.PDCInput) bool {
			return in.Status != nil && *in.Status == domain.PDCCleared
		})).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/pdc/"+id,
		`{"cheque_number":"000123","bank_name":"Acme Bank","amount":500,"issue_date":"2024-03-01","due_date":"2024-04-01","status":"cleared"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Cheque not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeletePDC_Success() {
	id := uuid.NewString()
	suite.pdcService.On("DeletePDC", mock.AnythingOfType("*context.valueCtx"), suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/pdc/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

// --- Capital injections ---

func (suite *HandlersTestSuite) TestCreateCapital_Created() {
	injection := &domain.CapitalInjection{
		ID:     uuid.NewString(),
		UserID: suite.userID,
		CapitalDetails: domain.CapitalDetails{
			Type: domain.CapitalEquity, Amount: decimal.NewFromInt(10000), Date: day(2024, 1, 15),
		},
	}
	suite.capitalService.On("CreateCapitalInjection", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(in domain.CapitalDetails) bool {
			return in.Type == domain.CapitalEquity && in.Source != nil && *in.Source == "Founder"
		})).Return(injection, nil).Once()

	w := suite.do(http.MethodPost, "/api/capital", `{"type":"equity","amount":10000,"date":"2024-01-15","source":"Founder"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"amount":10000`)
	suite.capitalService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateCapital_AmountTooLarge() {
	w := suite.do(http.MethodPost, "/api/capital", `{"type":"equity","amount":1000000000000,"date":"2024-01-15"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Validation failed","details":[{"field":"amount","message":"Amount must be at most 999999999999.99"}]}`,
		w.Body.String())
	suite.capitalService.AssertNotCalled(suite.T(), "CreateCapitalInjection", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestUpdateCapital_NotFound() {
	id := uuid.NewString()
	suite.capitalService.On("UpdateCapitalInjection", mock.AnythingOfType("*context.valueCtx"), suite.userID, id, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/capital/"+id, `{"type":"grant","amount":100,"date":"2024-01-15"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Capital injection not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteCapital_Failure() {
	id := uuid.NewString()
	suite.capitalService.On("DeleteCapitalInjection", mock.Anything, suite.userID, id).Return(assert.AnError).Once()

	w := suite.do(http.MethodDelete, "/api/capital/"+id, "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to delete capital injection"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteCapital_Success() {
	id := uuid.NewString()
	suite.capitalService.On("DeleteCapitalInjection", mock.AnythingOfType("*context.valueCtx"), suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/capital/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}
