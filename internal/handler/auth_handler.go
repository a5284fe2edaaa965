package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/pkg/response"
)

// AuthHandler handles signup, login, session check and logout
type AuthHandler struct {
	authService *service.AuthService
	sessionCfg  config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionCfg:  sessionCfg,
	}
}

// bindJSON binds the request body and writes the error response itself on
// failure: 400 for bodies that are not valid JSON, 422 for payloads that
// fail validation.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.UnprocessableEntity(c, err.Error())
		} else {
			response.BadRequest(c, "invalid request body")
		}
		return false
	}
	return true
}

// Signup handles user registration
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			response.UnprocessableEntity(c, "username already taken")
		case errors.Is(err, repository.ErrEmailTaken):
			response.UnprocessableEntity(c, "email already taken")
		case errors.Is(err, models.ErrPasswordRequired):
			response.UnprocessableEntity(c, "username and password required")
		default:
			response.InternalError(c, "failed to sign up")
		}
		return
	}

	h.setSessionCookie(c, token)
	response.Created(c, user.Public())
}

// Login handles user login
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		response.InternalError(c, "failed to log in")
		return
	}

	h.setSessionCookie(c, token)
	response.OK(c, user.Public())
}

// CheckSession returns the user bound to the current session
// GET /check_session
func (h *AuthHandler) CheckSession(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}
	response.OK(c, user.Public())
}

// Logout ends the current session
// DELETE /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.sessionCfg.CookieName)
	if err != nil || token == "" {
		response.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.Unauthorized(c, "unauthorized")
			return
		}
		response.InternalError(c, "failed to log out")
		return
	}

	h.clearSessionCookie(c)
	response.NoContent(c)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.GET("/check_session", requireSession, h.CheckSession)
	rg.DELETE("/logout", h.Logout)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCfg.CookieName, token, h.sessionCfg.TTLHours*3600, "/",
		h.sessionCfg.Domain, h.sessionCfg.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCfg.CookieName, "", -1, "/",
		h.sessionCfg.Domain, h.sessionCfg.Secure, true)
}
