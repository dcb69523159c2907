package middleware

import (
	"strings"

	"github.com/aledanee/blotch/config"
	"github.com/aledanee/blotch/helper"
	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

const currentUserKey = "current_user"

// AuthMiddleware verifies the bearer token, resolves the caller and gates
// disabled accounts. Tokens of a disabled user still verify; the account
// check happens here on every request, there is no revocation list.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Not authenticated")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Not authenticated")
			c.Abort()
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			HTTPHelper.SendUnauthorizedError(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := authService.GetUserByEmail(claims.Subject)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Could not validate credentials")
			c.Abort()
			return
		}

		if user.Disabled {
			HTTPHelper.SendForbiddenError(c, "Inactive user")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the caller resolved by AuthMiddleware, or nil on
// unprotected routes.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
