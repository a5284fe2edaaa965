package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/pkg/response"
)

const (
	// ContextKeyUser is the key for the authenticated user in gin context
	ContextKeyUser = "user"
	// ContextKeyUserID is the key for the authenticated user id in gin context
	ContextKeyUserID = "user_id"
)

// RequireSession creates a middleware that resolves the session cookie to
// a live user. Requests without a valid session get 401.
func RequireSession(cookieName string, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)

		c.Next()
	}
}

// GetUser gets the authenticated user from the gin context
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// GetUserID gets the authenticated user id from the gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0
	}
	return userID.(uint)
}
