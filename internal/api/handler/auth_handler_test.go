package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Employeest/employeest-be/internal/api/handler"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/pkg/responses"
)

func setupAuthRouter() (*gin.Engine, *mockAuthService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authService := new(mockAuthService)
	h := handler.NewAuthHandler(authService)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	return r, authService
}

func TestAuthHandler_Register(t *testing.T) {
	router, authService := setupAuthRouter()

	authService.On("Register", mock.AnythingOfType("*dto.RegisterRequest")).
		Return(&dto.ProfileResponse{ID: 1, Username: "newhire", Email: "newhire@example.com"}, nil)

	body, _ := json.Marshal(gin.H{
		"username":  "newhire",
		"email":     "newhire@example.com",
		"password":  "s3cret-pass",
		"password2": "s3cret-pass",
	})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var envelope responses.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "newhire", data["username"])

	authService.AssertExpectations(t)
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	router, authService := setupAuthRouter()

	authService.On("Register", mock.AnythingOfType("*dto.RegisterRequest")).
		Return(nil, responses.New(responses.CodeBadRequest, "Password fields didn't match."))

	body, _ := json.Marshal(gin.H{
		"username":  "newhire",
		"email":     "newhire@example.com",
		"password":  "s3cret-pass",
		"password2": "another-pass",
	})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var envelope responses.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "Password fields didn't match.", envelope.Message)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	router, authService := setupAuthRouter()

	body, _ := json.Marshal(gin.H{
		"username":  "newhire",
		"email":     "newhire@example.com",
		"password":  "short",
		"password2": "short",
	})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	authService.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	router, authService := setupAuthRouter()

	authService.On("Login", mock.AnythingOfType("*dto.LoginRequest")).
		Return(nil, responses.ErrInvalidCredentials)

	body, _ := json.Marshal(gin.H{"username": "ghost", "password": "wrong-pass"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
