package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinInstructionsLen is the minimum accepted length of recipe instructions
const MinInstructionsLen = 50

var (
	ErrTitleRequired        = errors.New("title required")
	ErrInstructionsTooShort = errors.New("instructions must be at least 50 characters long")
)

// Recipe represents a recipe owned by a user
type Recipe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"size:200;not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete int       `json:"minutes_to_complete"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Recipe model
func (Recipe) TableName() string {
	return "recipes"
}

// Validate checks the create-time invariants
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	// count characters, not bytes, to match the handler-boundary check
	if utf8.RuneCountInString(r.Instructions) < MinInstructionsLen {
		return ErrInstructionsTooShort
	}
	return nil
}

// BeforeCreate enforces the invariants at the entity boundary, independent
// of any checks done at the handler boundary
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	return r.Validate()
}

// RecipeView is the public representation of a Recipe. It carries the
// owner's id, not a nested user object.
type RecipeView struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	UserID            uint   `json:"user_id"`
}

// Public returns the public representation of the recipe
func (r *Recipe) Public() RecipeView {
	return RecipeView{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	}
}
