package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalaryServiceTestSuite struct {
	suite.Suite
	salaryRepo   *MockSalaryRepository
	employeeRepo *MockEmployeeRepository
	service      portssvc.SalarySvcFacade
	userID       string
	employeeID   string
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.salaryRepo = new(MockSalaryRepository)
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewSalaryService(suite.salaryRepo, suite.employeeRepo)
	suite.userID = uuid.NewString()
	suite.employeeID = uuid.NewString()
}

func (suite *SalaryServiceTestSuite) salaryInput() domain.SalaryInput {
	return domain.SalaryInput{
		SalaryDetails: domain.SalaryDetails{
			EmployeeID: suite.employeeID,
			Month:      3,
			Year:       2024,
			Amount:     decimal.NewFromInt(3000),
		},
	}
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_Success() {
	ctx := context.Background()
	in := suite.salaryInput()
	created := &domain.Salary{ID: uuid.NewString(), SalaryDetails: in.SalaryDetails, Status: domain.SalaryUnpaid}

	suite.employeeRepo.On("FindEmployeeByID", ctx, suite.userID, suite.employeeID).
		Return(&domain.Employee{ID: suite.employeeID}, nil).Once()
	suite.salaryRepo.On("CreateSalary", ctx, suite.userID, in).Return(created, nil).Once()

	salary, err := suite.service.CreateSalary(ctx, suite.userID, in)

	suite.Require().NoError(err)
	suite.Equal(domain.SalaryUnpaid, salary.Status)
	suite.salaryRepo.AssertExpectations(suite.T())
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_DuplicatePeriod() {
	ctx := context.Background()
	in := suite.salaryInput()

	suite.employeeRepo.On("FindEmployeeByID", ctx, suite.userID, suite.employeeID).
		Return(&domain.Employee{ID: suite.employeeID}, nil).Once()
	suite.salaryRepo.On("CreateSalary", ctx, suite.userID, in).
		Return(nil, apperrors.NewConflictError("Salary record already exists for this employee, month, and year")).Once()

	salary, err := suite.service.CreateSalary(ctx, suite.userID, in)

	suite.Nil(salary)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_EmployeeOfAnotherUser() {
	ctx := context.Background()
	in := suite.salaryInput()

	suite.employeeRepo.On("FindEmployeeByID", ctx, suite.userID, suite.employeeID).
		Return(nil, apperrors.ErrNotFound).Once()

	salary, err := suite.service.CreateSalary(ctx, suite.userID, in)

	suite.Nil(salary)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	details, ok := apperrors.ValidationDetails(err)
	suite.Require().True(ok)
	suite.Equal("employee_id", details[0].Field)
	suite.salaryRepo.AssertNotCalled(suite.T(), "CreateSalary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_EmployeeLookupFails() {
	ctx := context.Background()
	in := suite.salaryInput()

	suite.employeeRepo.On("FindEmployeeByID", ctx, suite.userID, suite.employeeID).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.CreateSalary(ctx, suite.userID, in)

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	in := suite.salaryInput()

	suite.employeeRepo.On("FindEmployeeByID", ctx, suite.userID, suite.employeeID).
		Return(&domain.Employee{ID: suite.employeeID}, nil).Once()
	suite.salaryRepo.On("UpdateSalary", ctx, suite.userID, id, in).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateSalary(ctx, suite.userID, id, in)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SalaryServiceTestSuite) TestDeleteSalary_MalformedID() {
	suite.NoError(suite.service.DeleteSalary(context.Background(), suite.userID, "nope"))
	suite.salaryRepo.AssertNotCalled(suite.T(), "DeleteSalary", mock.Anything, mock.Anything, mock.Anything)
}

func TestSalaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}
