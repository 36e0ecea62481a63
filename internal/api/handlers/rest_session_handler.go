package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
)

// RestSessionHandler handles REST requests for the session user.
type RestSessionHandler struct {
	sessionService services.ISessionService
}

// NewRestSessionHandler creates a new RestSessionHandler.
func NewRestSessionHandler(sessionService services.ISessionService) *RestSessionHandler {
	return &RestSessionHandler{sessionService: sessionService}
}

// LoginRequest is the POST /v1/session body.
type LoginRequest struct {
	Name  string      `json:"name" binding:"required"`
	Email string      `json:"email" binding:"required,email"`
	Role  models.Role `json:"role"`
}

// Login handles POST /v1/session.
func (h *RestSessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login request: " + err.Error()})
		return
	}

	user, token, err := h.sessionService.Login(c.Request.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Current handles GET /v1/session.
func (h *RestSessionHandler) Current(c *gin.Context) {
	user, err := h.sessionService.Current(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout handles DELETE /v1/session.
func (h *RestSessionHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}
	c.Status(http.StatusNoContent)
}
