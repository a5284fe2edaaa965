package repository

import (
	"github.com/recipe-share/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository handles recipe data access
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a new recipe
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// ListAll retrieves all recipes, newest first
func (r *RecipeRepository) ListAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	result := r.db.Order("created_at DESC").Find(&recipes)
	return recipes, result.Error
}
