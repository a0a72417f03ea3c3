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

// liabilityHandler handles HTTP requests related to liabilities.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
}

func newLiabilityHandler(svc portssvc.LiabilitySvcFacade) *liabilityHandler {
	return &liabilityHandler{liabilityService: svc}
}

// registerLiabilityRoutes registers routes related to liabilities.
func registerLiabilityRoutes(rg *gin.RouterGroup, svc portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(svc)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.GET("", h.listLiabilities)
		liabilities.POST("", h.createLiability)
		liabilities.PUT("/:id", h.updateLiability)
		liabilities.DELETE("/:id", h.deleteLiability)
	}
}

// listLiabilities godoc
// @Summary List liabilities
// @Description Lists the caller's liabilities, newest first
// @Tags liabilities
// @Produce json
// @Param type query string false "Liability type"
// @Param search query string false "Substring match on name and notes"
// @Success 200 {object} dto.DataResponse{data=[]dto.LiabilityResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /liabilities [get]
func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListLiabilitiesParams
	if !bindQuery(c, &params) {
		return
	}

	items, err := h.liabilityService.ListLiabilities(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Liability not found", "Failed to fetch liabilities")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToLiabilityResponses(items)})
}

// createLiability godoc
// @Summary Create a liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param body body object true "type, name, amount, outstanding_amount, due_date, interest_rate, notes"
// @Success 201 {object} dto.DataResponse{data=dto.LiabilityResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /liabilities [post]
func (h *liabilityHandler) createLiability(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateLiability)
	if !ok {
		return
	}

	item, err := h.liabilityService.CreateLiability(c.Request.Context(), userID, dto.LiabilityDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Liability not found", "Failed to create liability")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Liability created", slog.String("liability_id", item.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToLiabilityResponse(*item)})
}

// updateLiability godoc
// @Summary Update a liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param id path string true "Liability ID"
// @Param body body object true "type, name, amount, outstanding_amount, due_date, interest_rate, notes"
// @Success 200 {object} dto.DataResponse{data=dto.LiabilityResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /liabilities/{id} [put]
func (h *liabilityHandler) updateLiability(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateLiability)
	if !ok {
		return
	}

	item, err := h.liabilityService.UpdateLiability(c.Request.Context(), userID, c.Param("id"), dto.LiabilityDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Liability not found", "Failed to update liability")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToLiabilityResponse(*item)})
}

// deleteLiability godoc
// @Summary Delete a liability
// @Description Succeeds whether or not the liability existed
// @Tags liabilities
// @Produce json
// @Param id path string true "Liability ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /liabilities/{id} [delete]
func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.liabilityService.DeleteLiability(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Liability not found", "Failed to delete liability")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
