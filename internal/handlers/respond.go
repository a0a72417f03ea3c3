package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requireUser returns the authenticated user id or writes a 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// bindPayload decodes the request body into an untyped object, keeping
// numbers as json.Number so amounts reach validation without float rounding.
func bindPayload(c *gin.Context) (validation.Payload, bool) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	var payload validation.Payload
	if err := dec.Decode(&payload); err != nil {
		msg := "Invalid request format: " + err.Error()
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to decode request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return nil, false
	}
	if payload == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Request body must be a JSON object"})
		return nil, false
	}
	return payload, true
}

// bindValidPayload decodes the body and runs check on it, writing the 400 response on failure.
func bindValidPayload(c *gin.Context, check func(validation.Payload) validation.Result) (validation.Payload, bool) {
	payload, ok := bindPayload(c)
	if !ok {
		return nil, false
	}
	if res := check(payload); !res.IsValid {
		respondError(c, res.Err(), "", "")
		return nil, false
	}
	return payload, true
}

// bindQuery binds list filters, writing a 400 on malformed values.
func bindQuery(c *gin.Context, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}

// respondError maps a service error onto the JSON error envelope.
func respondError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if details, ok := apperrors.ValidationDetails(err); ok {
		logger.Warn("Validation failed", slog.Int("fields", len(details)))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, apperrors.ErrDuplicate):
		msg := "Record already exists"
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
		logger.Warn("Duplicate record", slog.String("error", msg))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalMsg})
	}
}
