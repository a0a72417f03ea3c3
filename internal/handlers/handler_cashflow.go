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

// cashflowHandler handles HTTP requests related to cashflow entries.
type cashflowHandler struct {
	cashflowService portssvc.CashflowSvcFacade
}

func newCashflowHandler(svc portssvc.CashflowSvcFacade) *cashflowHandler {
	return &cashflowHandler{cashflowService: svc}
}

// registerCashflowRoutes registers routes related to cashflow entries.
func registerCashflowRoutes(rg *gin.RouterGroup, svc portssvc.CashflowSvcFacade) {
	h := newCashflowHandler(svc)

	entries := rg.Group("/cashflow")
	{
		entries.GET("", h.listCashflows)
		entries.POST("", h.createCashflow)
		entries.PUT("/:id", h.updateCashflow)
		entries.DELETE("/:id", h.deleteCashflow)
	}
}

// listCashflows godoc
// @Summary List cashflow entries
// @Description Lists the caller's cashflow entries, newest date first
// @Tags cashflow
// @Produce json
// @Param type query string false "inflow or outflow"
// @Param category query string false "Category"
// @Param date query string false "Month bucket (YYYY-MM)"
// @Param search query string false "Substring match on category and description"
// @Success 200 {object} dto.DataResponse{data=[]dto.CashflowResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cashflow [get]
func (h *cashflowHandler) listCashflows(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListCashflowParams
	if !bindQuery(c, &params) {
		return
	}

	items, err := h.cashflowService.ListCashflows(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Cashflow entry not found", "Failed to fetch cashflow entries")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToCashflowResponses(items)})
}

// createCashflow godoc
// @Summary Create a cashflow entry
// @Tags cashflow
// @Accept json
// @Produce json
// @Param body body object true "type, category, amount, date, description, reference_id, reference_type"
// @Success 201 {object} dto.DataResponse{data=dto.CashflowResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cashflow [post]
func (h *cashflowHandler) createCashflow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateCashflow)
	if !ok {
		return
	}

	item, err := h.cashflowService.CreateCashflow(c.Request.Context(), userID, dto.CashflowDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Cashflow entry not found", "Failed to create cashflow entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Cashflow entry created", slog.String("cashflow_id", item.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToCashflowResponse(*item)})
}

// updateCashflow godoc
// @Summary Update a cashflow entry
// @Tags cashflow
// @Accept json
// @Produce json
// @Param id path string true "Cashflow entry ID"
// @Param body body object true "type, category, amount, date, description, reference_id, reference_type"
// @Success 200 {object} dto.DataResponse{data=dto.CashflowResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cashflow/{id} [put]
func (h *cashflowHandler) updateCashflow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateCashflow)
	if !ok {
		return
	}

	item, err := h.cashflowService.UpdateCashflow(c.Request.Context(), userID, c.Param("id"), dto.CashflowDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Cashflow entry not found", "Failed to update cashflow entry")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToCashflowResponse(*item)})
}

// deleteCashflow godoc
// @Summary Delete a cashflow entry
// @Description Succeeds whether or not the cashflow entry existed
// @Tags cashflow
// @Produce json
// @Param id path string true "Cashflow entry ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cashflow/{id} [delete]
func (h *cashflowHandler) deleteCashflow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.cashflowService.DeleteCashflow(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Cashflow entry not found", "Failed to delete cashflow entry")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
