package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	apperrors "github.com/elegantedge/summer-school-backend/errors"
)

// PrincipalEmailKey is the gin context key holding the verified caller email.
const PrincipalEmailKey = "principalEmail"

// AuthGate verifies the `Authorization: Bearer <token>` header against the
// process-wide HS256 secret. Missing or invalid tokens abort the request
// with 401 before any handler side effect runs. On success the email claim
// is attached to the request context; nothing is stored beyond the request.
func AuthGate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(apperrors.ErrUnauthorized.Code, gin.H{"error": true, "message": apperrors.ErrUnauthorized.Message})
			return
		}

		tokenString := strings.TrimPrefix(authorization, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(apperrors.ErrUnauthorized.Code, gin.H{"error": true, "message": apperrors.ErrUnauthorized.Message})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if email, ok := claims["email"].(string); ok {
				c.Set(PrincipalEmailKey, email)
			}
		}

		c.Next()
	}
}

// GetPrincipalEmail returns the verified email set by AuthGate, or "" when
// the route is unprotected or the token carried no email claim.
func GetPrincipalEmail(c *gin.Context) string {
	if val, exists := c.Get(PrincipalEmailKey); exists {
		return val.(string)
	}
	return ""
}
