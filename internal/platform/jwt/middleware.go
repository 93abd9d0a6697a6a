package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys under which the middleware stores the verified identity.
const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
)

// ErrInvalidToken is the single error for every verification failure:
// bad structure, wrong signature, unexpected algorithm, or expiry.
// Callers cannot tell which it was.
var ErrInvalidToken = errors.New("invalid token")

// ParseToken verifies a signed token and extracts the identity claims.
// Any structural, cryptographic, or expiry failure yields ErrInvalidToken.
func ParseToken(secret, tokenStr string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, "", ErrInvalidToken
	}
	name, ok := claims["name"].(string)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	return uint(sub), name, nil
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid bearer token. The secret is captured once at router
// construction; nothing re-reads the environment per request.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, name, err := ParseToken(secret, tokenStr)
		if err != nil {
			// Same body for malformed, forged and expired tokens.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserName, name)
		c.Next()
	}
}
