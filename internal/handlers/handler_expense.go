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

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(svc portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: svc}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, svc portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(svc)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists the caller's expenses, newest date first
// @Tags expenses
// @Produce json
// @Param category query string false "Expense category"
// @Param date query string false "Month bucket (YYYY-MM)"
// @Param search query string false "Substring match on notes"
// @Success 200 {object} dto.DataResponse{data=[]dto.ExpenseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListExpensesParams
	if !bindQuery(c, &params) {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Expense not found", "Failed to fetch expenses")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToExpenseResponses(expenses)})
}

// createExpense godoc
// @Summary Create an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body object true "category, amount, date, notes"
// @Success 201 {object} dto.DataResponse{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateExpense)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, dto.ExpenseDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Expense not found", "Failed to create expense")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense created", slog.String("expense_id", expense.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToExpenseResponse(*expense)})
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body object true "category, amount, date, notes"
// @Success 200 {object} dto.DataResponse{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateExpense)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, c.Param("id"), dto.ExpenseDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Expense not found", "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToExpenseResponse(*expense)})
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Succeeds whether or not the expense existed
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Expense not found", "Failed to delete expense")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
