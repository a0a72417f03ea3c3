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

// pdcHandler handles HTTP requests related to cheques.
type pdcHandler struct {
	pdcService portssvc.PDCSvcFacade
}

func newPDCHandler(svc portssvc.PDCSvcFacade) *pdcHandler {
	return &pdcHandler{pdcService: svc}
}

// registerPDCRoutes registers routes related to cheques.
func registerPDCRoutes(rg *gin.RouterGroup, svc portssvc.PDCSvcFacade) {
	h := newPDCHandler(svc)

	cheques := rg.Group("/pdc")
	{
		cheques.GET("", h.listPDCs)
		cheques.POST("", h.createPDC)
		cheques.PUT("/:id", h.updatePDC)
		cheques.DELETE("/:id", h.deletePDC)
	}
}

// listPDCs godoc
// @Summary List cheques
// @Description Lists the caller's post-dated cheques, earliest due date first
// @Tags pdc
// @Produce json
// @Param status query string false "Cheque status"
// @Param bank_name query string false "Bank name"
// @Param search query string false "Substring match on cheque number, payee and purpose"
// @Success 200 {object} dto.DataResponse{data=[]dto.PDCResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /pdc [get]
func (h *pdcHandler) listPDCs(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListPDCParams
	if !bindQuery(c, &params) {
		return
	}

	items, err := h.pdcService.ListPDCs(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Cheque not found", "Failed to fetch cheques")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToPDCResponses(items)})
}

// createPDC godoc
// @Summary Create a cheque
// @Tags pdc
// @Accept json
// @Produce json
// @Param body body object true "cheque_number, bank_name, amount, issue_date, due_date, status, payee, purpose, notes"
// @Success 201 {object} dto.DataResponse{data=dto.PDCResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /pdc [post]
func (h *pdcHandler) createPDC(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidatePDC)
	if !ok {
		return
	}

	item, err := h.pdcService.CreatePDC(c.Request.Context(), userID, dto.PDCInputFromPayload(payload))
	if err != nil {
		respondError(c, err, "Cheque not found", "Failed to create cheque")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Cheque created", slog.String("pdc_id", item.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToPDCResponse(*item)})
}

// updatePDC godoc
// @Summary Update a cheque
// @Tags pdc
// @Accept json
// @Produce json
// @Param id path string true "Cheque ID"
// @Param body body object true "cheque_number, bank_name, amount, issue_date, due_date, status, payee, purpose, notes"
// @Success 200 {object} dto.DataResponse{data=dto.PDCResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /pdc/{id} [put]
func (h *pdcHandler) updatePDC(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidatePDC)
	if !ok {
		return
	}

	item, err := h.pdcService.UpdatePDC(c.Request.Context(), userID, c.Param("id"), dto.PDCInputFromPayload(payload))
	if err != nil {
		respondError(c, err, "Cheque not found", "Failed to update cheque")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToPDCResponse(*item)})
}

// deletePDC godoc
// @Summary Delete a cheque
// @Description Succeeds whether or not the cheque existed
// @Tags pdc
// @Produce json
// @Param id path string true "Cheque ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /pdc/{id} [delete]
func (h *pdcHandler) deletePDC(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.pdcService.DeletePDC(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Cheque not found", "Failed to delete cheque")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
