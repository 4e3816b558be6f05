package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashier_app/internal/handlers"
	"cashier_app/internal/models"
	"cashier_app/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockAuthService is a mock of services.AuthService
type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(username, password string) (*models.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) Register(username, password, role string) (uint, error) {
	args := m.Called(username, password, role)
	return args.Get(0).(uint), args.Error(1)
}

func setupAuthRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAuthHandler(svc)
	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/register", handler.Register)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	user := &models.User{ID: 2, Username: "kasir1", Password: "hashed", Role: "kasir"}
	svc.On("Login", "kasir1", "rahasia").Return(user, "signed-token", nil)

	body := `{"username":"kasir1","password":"rahasia"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "Login successful!", payload["message"])
	assert.Equal(t, "signed-token", payload["token"])
	assert.Equal(t, "kasir", payload["role"])

	// Hashed password must never leak into the response
	userPayload := payload["user"].(map[string]interface{})
	assert.NotContains(t, userPayload, "password")
	assert.Equal(t, "kasir1", userPayload["username"])
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown user", services.ErrUserNotFound, http.StatusNotFound},
		{"wrong password", services.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAuthService)
			router := setupAuthRouter(svc)

			svc.On("Login", "kasir1", "pw").Return(nil, "", tt.err)

			body := `{"username":"kasir1","password":"pw"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	svc.On("Register", "kasir2", "rahasia", "kasir").Return(uint(8), nil)

	body := `{"username":"kasir2","password":"rahasia","role":"kasir"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "User registered successfully!", payload["message"])
	assert.Equal(t, float64(8), payload["userId"])
}

func TestAuthHandler_Register_DuplicateUser(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	svc.On("Register", "kasir1", "rahasia", "kasir").Return(uint(0), services.ErrUserExists)

	body := `{"username":"kasir1","password":"rahasia","role":"kasir"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "User already exists", payload["message"])
}
