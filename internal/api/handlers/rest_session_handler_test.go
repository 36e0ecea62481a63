package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivek9939947227/Asprints-Aada/internal/api/handlers"
	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
	"github.com/Vivek9939947227/Asprints-Aada/internal/store"
)

func newSessionHandler() *handlers.RestSessionHandler {
	cfg := &config.Config{
		JwtSecret:     "test-secret",
		JwtTTL:        time.Hour,
		PlatformEmail: "owner@asprintsaada.example.com",
	}
	return handlers.NewRestSessionHandler(services.NewSessionService(store.NewMemory(), cfg))
}

func TestRestSessionHandler_LoginAndCurrent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler()

	r := gin.New()
	r.POST("/v1/session", handler.Login)
	r.GET("/v1/session", handler.Current)

	body, _ := json.Marshal(map[string]string{"name": "Asha", "email": "asha@example.com", "role": "Owner"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, models.RoleOwner, loginResp.User.Role)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/v1/session", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var currentResp struct {
		User *models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &currentResp))
	require.NotNil(t, currentResp.User)
	assert.Equal(t, loginResp.User.ID, currentResp.User.ID)
}

func TestRestSessionHandler_LoginRejectsBadEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler()

	r := gin.New()
	r.POST("/v1/session", handler.Login)

	body, _ := json.Marshal(map[string]string{"name": "Asha", "email": "not-an-email"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestSessionHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler()

	r := gin.New()
	r.POST("/v1/session", handler.Login)
	r.GET("/v1/session", handler.Current)
	r.DELETE("/v1/session", handler.Logout)

	body, _ := json.Marshal(map[string]string{"name": "Asha", "email": "asha@example.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/v1/session", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/v1/session", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var currentResp struct {
		User *models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &currentResp))
	assert.Nil(t, currentResp.User)
}
