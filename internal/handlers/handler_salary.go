package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salaryHandler handles HTTP requests related to salaries.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
}

func newSalaryHandler(svc portssvc.SalarySvcFacade) *salaryHandler {
	return &salaryHandler{salaryService: svc}
}

// registerSalaryRoutes registers routes related to salaries.
func registerSalaryRoutes(rg *gin.RouterGroup, svc portssvc.SalarySvcFacade) {
	h := newSalaryHandler(svc)

	salaries := rg.Group("/salaries")
	{
		salaries.GET("", h.listSalaries)
		salaries.POST("", h.createSalary)
		salaries.PUT("/:id", h.updateSalary)
		salaries.DELETE("/:id", h.deleteSalary)
	}
}

// listSalaries godoc
// @Summary List salaries
// @Description Lists salaries with their employee name and position, newest period first
// @Tags salaries
// @Produce json
// @Param employee_id query string false "Employee ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param status query string false "paid, unpaid or pending"
// @Success 200 {object} dto.DataResponse{data=[]dto.SalaryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /salaries [get]
func (h *salaryHandler) listSalaries(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListSalariesParams
	if !bindQuery(c, &params) {
		return
	}

	salaries, err := h.salaryService.ListSalaries(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Salary not found", "Failed to fetch salaries")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToSalaryResponses(salaries)})
}

// createSalary godoc
// @Summary Create a salary record
// @Tags salaries
// @Accept json
// @Produce json
// @Param salary body object true "employee_id, month, year, amount, status, paid_date, notes"
// @Success 201 {object} dto.DataResponse{data=dto.SalaryResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Salary already recorded for that employee and period"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /salaries [post]
func (h *salaryHandler) createSalary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateSalary)
	if !ok {
		return
	}

	salary, err := h.salaryService.CreateSalary(c.Request.Context(), userID, dto.SalaryInputFromPayload(payload))
	if err != nil {
		respondError(c, err, "Salary not found", "Failed to create salary")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Salary created", slog.String("salary_id", salary.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToSalaryResponse(*salary)})
}

// updateSalary godoc
// @Summary Update a salary record
// @Tags salaries
// @Accept json
// @Produce json
// @Param id path string true "Salary ID"
// @Param salary body object true "employee_id, month, year, amount, status, paid_date, notes"
// @Success 200 {object} dto.DataResponse{data=dto.SalaryResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /salaries/{id} [put]
func (h *salaryHandler) updateSalary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateSalary)
	if !ok {
		return
	}

	salary, err := h.salaryService.UpdateSalary(c.Request.Context(), userID, c.Param("id"), dto.SalaryInputFromPayload(payload))
	if err != nil {
		respondError(c, err, "Salary not found", "Failed to update salary")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToSalaryResponse(*salary)})
}

// deleteSalary godoc
// @Summary Delete a salary record
// @Description Succeeds whether or not the salary record existed
// @Tags salaries
// @Produce json
// @Param id path string true "Salary ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /salaries/{id} [delete]
func (h *salaryHandler) deleteSalary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.salaryService.DeleteSalary(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Salary not found", "Failed to delete salary")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
