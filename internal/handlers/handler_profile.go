package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, svc portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: svc}

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
	}
}

// getProfile godoc
// @Summary Get the caller's business profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.ProfileResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Profile not saved yet"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Profile not found", "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToProfileResponse(*profile)})
}

// updateProfile godoc
// @Summary Save the caller's business profile
// @Description Creates the profile on first save. The email is taken from the session token.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body object true "full_name, company_name"
// @Success 200 {object} dto.DataResponse{data=dto.ProfileResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	payload, ok := bindValidPayload(c, validation.ValidateProfile)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID,
		middleware.GetEmailFromContext(c), dto.ProfileDetailsFromPayload(payload))
	if err != nil {
		respondError(c, err, "Profile not found", "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToProfileResponse(*profile)})
}
