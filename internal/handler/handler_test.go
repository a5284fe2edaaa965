package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/handler"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/internal/session"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testCookieName = "recipe_session"

// fakeUserStore mimics the user table, including its unique constraints.
// The mutex stands in for the atomicity the database index provides.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// fakeRecipeStore mimics the recipe table
type fakeRecipeStore struct {
	mu      sync.Mutex
	nextID  uint
	recipes []models.Recipe
}

func (s *fakeRecipeStore) Create(recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	recipe.ID = s.nextID
	s.recipes = append(s.recipes, *recipe)
	return nil
}

func (s *fakeRecipeStore) ListAll() ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeUserStore, *fakeRecipeStore) {
	t.Helper()

	users := newFakeUserStore()
	recipes := &fakeRecipeStore{}
	sessions := session.NewMemoryStore()

	authService := service.NewAuthService(users, sessions)
	recipeService := service.NewRecipeService(recipes)

	sessionCfg := config.SessionConfig{CookieName: testCookieName, TTLHours: 1}
	authHandler := handler.NewAuthHandler(authService, sessionCfg)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	router := gin.New()
	root := router.Group("/")
	requireSession := middleware.RequireSession(testCookieName, authService)
	authHandler.RegisterRoutes(root, requireSession)
	recipeHandler.RegisterRoutes(root, requireSession)

	return router, users, recipes
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session cookie from a response
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == testCookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", testCookieName)
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func signupBody(username string) gin.H {
	return gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "kitchen-secret",
	}
}

// signup registers a user and returns its session cookie
func signup(t *testing.T, router *gin.Engine, username string) *http.Cookie {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/signup", signupBody(username))
	require.Equal(t, http.StatusCreated, w.Code)
	return sessionCookie(t, w)
}
