package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey = contextKey("userID")
	emailKey  = contextKey("email")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetEmailFromContext returns the email claim of the session token, if any.
func GetEmailFromContext(c *gin.Context) *string {
	email, ok := c.Request.Context().Value(emailKey).(string)
	if !ok || email == "" {
		return nil
	}
	return &email
}
