package service

import (
	"context"
	"errors"

	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserStore is the user storage the auth service depends on
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// AuthService handles signup, login and session resolution
type AuthService struct {
	users    UserStore
	sessions session.Store
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, sessions session.Store) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,max=100"`
	Bio      string `json:"bio" binding:"max=500"`
	ImageURL string `json:"image_url" binding:"max=255"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new user and opens a session for it. Duplicate
// usernames and emails surface as repository.ErrUsernameTaken and
// repository.ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*models.User, string, error) {
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, "", err
	}

	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and opens a session. Unknown usernames
// and wrong passwords both report ErrInvalidCredentials, so the error
// does not reveal whether the username exists.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.User, string, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.Authenticate(req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CurrentUser resolves a session token to a live user record. A token
// whose user no longer exists is cleared and reported as ErrUnauthorized
// instead of resolving to a ghost identity.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = s.sessions.Clear(ctx, token)
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// Logout ends the session for the token. Logging out without a live
// session reports ErrUnauthorized.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if _, err := s.sessions.Get(ctx, token); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return ErrUnauthorized
		}
		return err
	}
	return s.sessions.Clear(ctx, token)
}

func (s *AuthService) openSession(ctx context.Context, userID uint) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Set(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}
