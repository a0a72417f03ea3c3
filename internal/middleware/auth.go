package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// The token is read from the Authorization header and, failing that, from the
// session cookie named cookieName. An empty issuer accepts any issuer.
func AuthMiddleware(jwtSecret, issuer, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := tokenFromRequest(c, cookieName)
		if err != nil {
			logger.Warn("Session token missing or malformed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := utils.ParseSessionToken(tokenString, jwtSecret, issuer)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "Token has expired"
			case errors.Is(err, jwt.ErrTokenNotValidYet):
				msg = "Token not valid yet"
			case errors.Is(err, jwt.ErrTokenInvalidIssuer):
				msg = "Invalid token issuer"
			case errors.Is(err, utils.ErrMissingSubject):
				msg = "Invalid token claims"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.Subject)
		if claims.Email != "" {
			ctx = context.WithValue(ctx, emailKey, claims.Email)
		}
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", claims.Subject)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", errors.New("Authorization header format must be Bearer {token}")
		}
		return parts[1], nil
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			return cookie, nil
		}
	}
	return "", errors.New("Authorization header required")
}
