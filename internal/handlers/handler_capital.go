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

// capitalHandler handles HTTP requests related to capital injections.
type capitalHandler struct {
	capitalService portssvc.CapitalSvcFacade
}

func newCapitalHandler(svc portssvc.CapitalSvcFacade) *capitalHandler {
	return &capitalHandler{capitalService: svc}
}

// registerCapitalRoutes registers routes related to capital injections.
func registerCapitalRoutes(rg *gin.RouterGroup, svc portssvc.CapitalSvcFacade) {
	h := newCapitalHandler(svc)

	injections := rg.Group("/capital")
	{
		injections.GET("", h.listCapitalInjections)
		injections.POST("", h.createCapital)
		injections.PUT("/:id", h.updateCapital)
		injections.DELETE("/:id", h.deleteCapital)
	}
}

// listCapitalInjections godoc
// @Summary List capital injections
// @Description Lists the caller's capital injections, newest date first
// @Tags capital
// @Produce json
// @Param type query string false "Capital type"
// @Param source query string false "Source"
// @Param date query string false "Month bucket (YYYY-MM)"
// @Param search query string false "Substring match on source and description"
// @Success 200 {object} dto.DataResponse{data=[]dto.CapitalResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /capital [get]
func (h *capitalHandler) listCapitalInjections(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListCapitalParams
	if !bindQuery(c, &params) {
		return
	}

	items, err := h.capitalService.ListCapitalInjections(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Capital injection not found", "Failed to fetch capital injections")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToCapitalResponses(items)})
}

// createCapital godoc
// @Summary Create a capital injection
// @Tags capital
// @Accept json
// @Produce json
// @Param body body object true "type, amount, date, source, description, notes"
// @Success 201 {object} dto.DataResponse{data=dto.CapitalResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /capital [post]
func (h *capitalHandler) createCapital(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateCapital)
	if !ok {
		return
	}

	item, err := h.capitalService.CreateCapitalInjection(c.Request.Context(), userID, dto.CapitalDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Capital injection not found", "Failed to create capital injection")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Capital injection created", slog.String("capital_injection_id", item.ID))
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToCapitalResponse(*item)})
}

// updateCapital godoc
// @Summary Update a capital injection
// @Tags capital
// @Accept json
// @Produce json
// @Param id path string true "Capital injection ID"
// @Param body body object true "type, amount, date, source, description, notes"
// @Success 200 {object} dto.DataResponse{data=dto.CapitalResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /capital/{id} [put]
func (h *capitalHandler) updateCapital(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateCapital)
	if !ok {
		return
	}

	item, err := h.capitalService.UpdateCapitalInjection(c.Request.Context(), userID, c.Param("id"), dto.CapitalDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Capital injection not found", "Failed to update capital injection")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToCapitalResponse(*item)})
}

// deleteCapital godoc
// @Summary Delete a capital injection
// @Description Succeeds whether or not the capital injection existed
// @Tags capital
// @Produce json
// @Param id path string true "Capital injection ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /capital/{id} [delete]
func (h *capitalHandler) deleteCapital(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.capitalService.DeleteCapitalInjection(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Capital injection not found", "Failed to delete capital injection")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
