package service

import (
	"github.com/recipe-share/internal/models"
)

// RecipeStore is the recipe storage the recipe service depends on
type RecipeStore interface {
	Create(recipe *models.Recipe) error
	ListAll() ([]models.Recipe, error)
}

// RecipeService handles recipe operations
type RecipeService struct {
	recipes RecipeStore
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipes RecipeStore) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// CreateRecipeRequest represents the recipe creation request
type CreateRecipeRequest struct {
	Title             string `json:"title" binding:"required,max=200"`
	Instructions      string `json:"instructions" binding:"required,min=50"`
	MinutesToComplete int    `json:"minutes_to_complete" binding:"required"`
}

// List retrieves all recipes
func (s *RecipeService) List() ([]models.Recipe, error) {
	return s.recipes.ListAll()
}

// Create creates a recipe owned by the given user. The invariants are
// checked here before any write, in addition to the entity-level check
// on insert.
func (s *RecipeService) Create(userID uint, req *CreateRecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
		UserID:            userID,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.recipes.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}
