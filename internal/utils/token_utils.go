package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a session token. The subject is the user id.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 session token for userID. email may be empty.
func GenerateJWT(userID, email, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and standard time claims of an
// HMAC-signed token, and the issuer when one is configured. Errors wrap the
// jwt sentinels (jwt.ErrTokenExpired etc).
func ParseSessionToken(tokenString, secret, issuer string) (*SessionClaims, error) {
	var opts []jwt.ParserOption
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// ErrMissingSubject is returned for a correctly signed token without a user id.
var ErrMissingSubject = errors.New("token has no subject")
