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

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(svc portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: svc}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, svc portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(svc)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Lists the caller's employees ordered by name
// @Tags employees
// @Produce json
// @Param active query string false "true or false"
// @Param search query string false "Substring match on name and position"
// @Success 200 {object} dto.DataResponse{data=[]dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListEmployeesParams
	if !bindQuery(c, &params) {
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Employee not found", "Failed to fetch employees")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToEmployeeResponses(employees)})
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body object true "name, position, monthly_salary, hire_date, is_active"
// @Success 201 {object} dto.DataResponse{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateEmployee)
	if !ok {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), userID, dto.EmployeeInputFromPayload(payload))
	if err != nil {
		respondError(c, err, "Employee not found", "Failed to create employee")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee created", slog.String("employee_id", employee.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToEmployeeResponse(*employee)})
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body object true "name, position, monthly_salary, hire_date, is_active"
// @Success 200 {object} dto.DataResponse{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateEmployee)
	if !ok {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), userID, c.Param("id"), dto.EmployeeInputFromPayload(payload))
	if err != nil {
		respondError(c, err, "Employee not found", "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToEmployeeResponse(*employee)})
}

// deleteEmployee godoc
// @Summary Deactivate an employee
// @Description Marks the employee inactive; salary history is kept. Succeeds whether or not the employee existed
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Employee not found", "Failed to deactivate employee")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
