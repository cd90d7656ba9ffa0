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

	"expense_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc  func(ctx context.Context, name, email, password string) error
	LoginFunc   func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	RefreshFunc func(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	LogoutFunc  func(ctx context.Context, refreshToken string) error
}

// Signup is the mock implementation of the Signup method.
func (m *mockAuthUsecase) Signup(ctx context.Context, name, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password)
	}
	return nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, client)
	}
	return nil, usecase.ErrInvalidCredentials // Default: failure
}

// Refresh is the mock implementation of the Refresh method.
func (m *mockAuthUsecase) Refresh(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken, client)
	}
	return nil, usecase.ErrInvalidRefreshToken // Default: failure
}

// Logout is the mock implementation of the Logout method.
func (m *mockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, name, email, password string) error
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"name": "Test User", "email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) error { return nil },
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"message": "ok"},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Test User", "email": "invalid-email", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Test User", "email": "test@example.com", "password": "short"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "failure: duplicate email (usecase error)",
			requestBody: gin.H{"name": "Test User", "email": "existing@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"error": "signup failed"},
		},
		{
			name:        "failure: storage error returns 500",
			requestBody: gin.H{"name": "Test User", "email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) error {
				return errors.New("storage unavailable")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "signup failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/signup", handler.Signup)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)

			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pair := &usecase.TokenPair{AccessToken: "dummy-jwt-token", RefreshToken: "dummy-refresh-token", ExpiresIn: 86400}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.TokenPair, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				return pair, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "dummy-jwt-token", "refresh_token": "dummy-refresh-token", "expires_in": float64(86400)},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "failure: invalid credentials (usecase error)",
			requestBody: gin.H{"email": "wrong@example.com", "password": "wrong-password"},
			mockLoginFunc: func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
		{
			name:        "failure: internal error",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				return nil, errors.New("failed to generate token")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "login failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)

			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: token rotation", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			RefreshFunc: func(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				assert.Equal(t, "old-refresh-token", refreshToken)
				return &usecase.TokenPair{AccessToken: "new-jwt", RefreshToken: "new-refresh", ExpiresIn: 86400}, nil
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/refresh", handler.Refresh)

		body, _ := json.Marshal(gin.H{"refresh_token": "old-refresh-token"})
		req, _ := http.NewRequest(http.MethodPost, "/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "new-jwt", responseBody["token"])
		assert.Equal(t, "new-refresh", responseBody["refresh_token"])
	})

	t.Run("failure: invalid refresh token", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.POST("/refresh", handler.Refresh)

		body, _ := json.Marshal(gin.H{"refresh_token": "stale-token"})
		req, _ := http.NewRequest(http.MethodPost, "/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("failure: missing refresh token", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.POST("/refresh", handler.Refresh)

		req, _ := http.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: session revoked", func(t *testing.T) {
		var revoked string
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				revoked = refreshToken
				return nil
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/logout", handler.Logout)

		body, _ := json.Marshal(gin.H{"refresh_token": "some-refresh-token"})
		req, _ := http.NewRequest(http.MethodPost, "/logout", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "some-refresh-token", revoked)
	})

	t.Run("failure: storage error", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				return errors.New("storage unavailable")
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/logout", handler.Logout)

		body, _ := json.Marshal(gin.H{"refresh_token": "some-refresh-token"})
		req, _ := http.NewRequest(http.MethodPost, "/logout", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
