package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/pkg/response"
)

// RecipeHandler handles recipe listing and creation
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// List returns all recipes
// GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.List()
	if err != nil {
		response.InternalError(c, "failed to list recipes")
		return
	}

	// Always an array, never null
	views := make([]models.RecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, recipes[i].Public())
	}
	response.OK(c, views)
}

// Create creates a recipe owned by the session's user
// POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.UnprocessableEntity(c, "invalid recipe data")
		} else {
			response.BadRequest(c, "invalid request body")
		}
		return
	}

	recipe, err := h.recipeService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, models.ErrInstructionsTooShort) || errors.Is(err, models.ErrTitleRequired) {
			response.UnprocessableEntity(c, "invalid recipe data")
			return
		}
		response.InternalError(c, "failed to create recipe")
		return
	}

	response.Created(c, recipe.Public())
}

// RegisterRoutes registers recipe routes. Both listing and creation
// require a session.
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc) {
	rg.GET("/recipes", requireSession, h.List)
	rg.POST("/recipes", requireSession, h.Create)
}
