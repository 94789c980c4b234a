package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tuneeng_backend/internal/feature/auth/domain/entity"
	"tuneeng_backend/internal/feature/auth/usecase"
	jwtmw "tuneeng_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc    func(ctx context.Context, email, password, fullName, username string) (*entity.User, error)
	LoginFunc       func(ctx context.Context, email, password string) (string, *entity.User, error)
	CurrentUserFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, fullName, username)
	}
	return nil, errors.New("register failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil, errors.New("login failed")
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func demoUser() *entity.User {
	return &entity.User{
		ID:       1,
		Email:    "demo@example.com",
		FullName: "Demo User",
		Username: "demo",
		Password: "hash-never-serialized",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, email, password, fullName, username string) (*entity.User, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success: user registration",
			requestBody: gin.H{
				"email": "demo@example.com", "password": "DemoPass123!",
				"full_name": "Demo User", "username": "demo",
			},
			mockRegister: func(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
				return demoUser(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "DemoPass123!", "full_name": "Demo User"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "failure: missing full name",
			requestBody:    gin.H{"email": "demo@example.com", "password": "DemoPass123!"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:        "failure: weak password (validation error)",
			requestBody: gin.H{"email": "demo@example.com", "password": "weakpass", "full_name": "Demo User"},
			mockRegister: func(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
				return nil, &usecase.ValidationError{Field: "password", Message: "password must contain at least one uppercase letter"}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "password must contain at least one uppercase letter",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"email": "existing@example.com", "password": "DemoPass123!", "full_name": "Demo User"},
			mockRegister: func(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "email already registered",
		},
		{
			name:        "failure: duplicate username",
			requestBody: gin.H{"email": "demo@example.com", "password": "DemoPass123!", "full_name": "Demo User", "username": "taken"},
			mockRegister: func(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
				return nil, usecase.ErrUsernameAlreadyTaken
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "username already taken",
		},
		{
			name:        "failure: store error stays generic",
			requestBody: gin.H{"email": "demo@example.com", "password": "DemoPass123!", "full_name": "Demo User"},
			mockRegister: func(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
				return nil, errors.New("pq: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegister}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/register", h.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, responseBody["error"])
				return
			}

			assert.Equal(t, "demo@example.com", responseBody["email"])
			assert.NotContains(t, w.Body.String(), "hash-never-serialized", "password hash must never leak")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLogin      func(ctx context.Context, email, password string) (string, *entity.User, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "demo@example.com", "password": "DemoPass123!"},
			mockLogin: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "dummy-jwt-token", demoUser(), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "DemoPass123!"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "demo@example.com"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"email": "demo@example.com", "password": "WrongPass123!"},
			mockLogin: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLogin}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, responseBody["error"])
				return
			}

			assert.Equal(t, "dummy-jwt-token", responseBody["access_token"])
			assert.Equal(t, "bearer", responseBody["token_type"])
			user, ok := responseBody["user"].(map[string]any)
			assert.True(t, ok, "expected embedded user object")
			assert.Equal(t, "demo@example.com", user["email"])
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&mockAuthUsecase{})
	router := gin.New()
	router.POST("/api/auth/logout", h.Logout)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out successfully")
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		contextUserID  any // nil means not set
		mockCurrent    func(ctx context.Context, userID uint) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:          "success",
			contextUserID: uint(1),
			mockCurrent: func(ctx context.Context, userID uint) (*entity.User, error) {
				return demoUser(), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no user id in context",
			contextUserID:  nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "subject no longer exists",
			contextUserID: uint(42),
			mockCurrent: func(ctx context.Context, userID uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{CurrentUserFunc: tt.mockCurrent}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.GET("/api/auth/me", func(c *gin.Context) {
				if tt.contextUserID != nil {
					c.Set(jwtmw.ContextUserID, tt.contextUserID)
				}
			}, h.Me)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "demo@example.com")
			} else {
				assert.Contains(t, w.Body.String(), "invalid or expired token")
			}
		})
	}
}
