package models

import (
	"errors"
	"time"

	"github.com/recipe-share/pkg/crypto"
	"gorm.io/gorm"
)

var (
	ErrPasswordRequired = errors.New("password required")
	ErrUsernameRequired = errors.New("username required")
	ErrEmailRequired    = errors.New("email required")
)

// User represents a registered user.
//
// The password hash is write-only: it is set through SetPassword, checked
// through Authenticate, and has no getter. Serialization goes through
// Public(), which enumerates the exposed fields explicitly so the hash can
// never leak into a response, even if fields are added later.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Bio          string    `gorm:"size:500" json:"bio"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Recipes []Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// SetPassword hashes the plaintext and stores the hash. The plaintext is
// discarded; an empty password is refused.
func (u *User) SetPassword(plain string) error {
	if plain == "" {
		return ErrPasswordRequired
	}
	hash, err := crypto.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// Authenticate reports whether the plaintext matches the stored hash.
func (u *User) Authenticate(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return crypto.CheckPassword(plain, u.PasswordHash)
}

// BeforeCreate enforces the create-time invariants at the entity boundary
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Username == "" {
		return ErrUsernameRequired
	}
	if u.Email == "" {
		return ErrEmailRequired
	}
	if u.PasswordHash == "" {
		return ErrPasswordRequired
	}
	return nil
}

// Profile is the public representation of a User
type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// Public returns the public representation of the user. The password hash
// is deliberately not part of it.
func (u *User) Public() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	}
}
