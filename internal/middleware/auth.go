package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/runlog/runlog-backend-go/pkg/response"
)

// ContextUserKey is the gin context key holding the resolved user id.
const ContextUserKey = "userID"

// Claims carried by API access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and resolves the API user id into the
// request context. A request without a resolvable user id is rejected
// here, before any fetch work happens.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			response.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !parsed.Valid {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}
		if claims.UserID == "" {
			response.Unauthorized(c, "Token carries no user id")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the user id resolved by Auth, or "" when absent.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}
