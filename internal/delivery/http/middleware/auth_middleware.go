package middleware

import (
	"net/http"
	"strings"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards admin routes. It accepts a bearer token in the
// Authorization header and verifies the user still exists, so deleted
// accounts are locked out even with a valid token.
func AuthMiddleware(tokens *auth.TokenIssuer, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		userID, email, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		if _, err := authUC.GetCurrentUser(c.Request.Context(), userID); err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserEmail), email)

		c.Next()
	}
}
