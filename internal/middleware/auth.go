package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ProfileCards_WebProject/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const ContextUsernameKey = "username"

// AuthMiddleware requires an admin token on every request. A nil issuer
// means admin protection is disabled and requests pass through.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return authenticate(issuer, func(*http.Request) bool { return true })
}

// MutationAuthMiddleware requires an admin token only on requests that can
// change state, so listing pages stay public.
func MutationAuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return authenticate(issuer, func(r *http.Request) bool {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return false
		}
		return true
	})
}

func authenticate(issuer *auth.TokenIssuer, required func(*http.Request) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if issuer == nil || !required(c.Request) {
			c.Next()
			return
		}

		tokenString, err := extractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			return
		}

		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
			return
		}
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// 헤더 사용이 불가능한 HTML 폼은 token 파라미터로 전달
func extractToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", errors.New("Invalid authorization header format")
		}
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	if token := c.Query("token"); token != "" {
		return token, nil
	}
	if token := c.PostForm("token"); token != "" {
		return token, nil
	}
	return "", errors.New("Authorization header required")
}
