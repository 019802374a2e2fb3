package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GargManasvini/mini-healthcare-platform/internal/auth"
	"github.com/GargManasvini/mini-healthcare-platform/internal/handlers"
	"github.com/GargManasvini/mini-healthcare-platform/internal/middleware"
	"github.com/GargManasvini/mini-healthcare-platform/internal/models"
	"github.com/GargManasvini/mini-healthcare-platform/internal/store"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) Create(ctx context.Context, record *models.HealthRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHealthStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthRecord), args.Error(1)
}

func newAuthHandler(users store.UserStore) *handlers.AuthHandler {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return handlers.NewAuthHandler(users, issuer, 3600, false, zerolog.Nop())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupMissingFields(t *testing.T) {
	users := new(MockUserStore)
	h := newAuthHandler(users)

	rec := postJSON(t, h.Signup, "/api/auth/signup", map[string]string{
		"firstName": "Asha",
		"email":     "asha@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "Create")
}

func TestSignupSuccess(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, store.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "asha@example.com" && u.PasswordHash != "" && u.PasswordHash != "hunter22"
	})).Return(nil)

	h := newAuthHandler(users)
	rec := postJSON(t, h.Signup, "/api/auth/signup", map[string]string{
		"firstName": "Asha",
		"lastName":  "Rao",
		"email":     "asha@example.com",
		"password":  "hunter22",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	// The password must never serialize outward.
	user, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
	users.AssertExpectations(t)
}

func TestSignupDuplicateEmail(t *testing.T) {
	existing := &models.User{ID: uuid.New(), Email: "asha@example.com"}
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "asha@example.com").Return(existing, nil)

	h := newAuthHandler(users)
	rec := postJSON(t, h.Signup, "/api/auth/signup", map[string]string{
		"firstName": "Asha",
		"lastName":  "Rao",
		"email":     "asha@example.com",
		"password":  "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already Exists")
	users.AssertNotCalled(t, "Create")
}

func TestLoginMissingFields(t *testing.T) {
	users := new(MockUserStore)
	h := newAuthHandler(users)

	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{"email": "asha@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, store.ErrNotFound)

	h := newAuthHandler(users)
	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "asha@example.com", PasswordHash: hash}
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	h := newAuthHandler(users)
	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Password")
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "asha@example.com", PasswordHash: hash}
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	h := newAuthHandler(users)
	rec := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "right-password",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["token"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.TokenCookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.False(t, cookie.Secure) // non-production context
}

func TestLogout(t *testing.T) {
	users := new(MockUserStore)
	h := newAuthHandler(users)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSignupMethodNotAllowed(t *testing.T) {
	users := new(MockUserStore)
	h := newAuthHandler(users)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/signup", nil)
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
