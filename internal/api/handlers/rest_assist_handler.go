package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Vivek9939947227/Asprints-Aada/internal/ai"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
)

// RestAssistHandler exposes the AI oracle capabilities over REST. The
// oracle itself never fails these endpoints: capability fallbacks are
// returned with a 200 like any other reply.
type RestAssistHandler struct {
	listingService services.IListingService
	assistant      ai.IAssistant
}

// NewRestAssistHandler creates a new RestAssistHandler.
func NewRestAssistHandler(listingService services.IListingService, assistant ai.IAssistant) *RestAssistHandler {
	return &RestAssistHandler{listingService: listingService, assistant: assistant}
}

// RecommendationsRequest is the POST /v1/assist/recommendations body.
type RecommendationsRequest struct {
	Query string `json:"query" binding:"required"`
}

// Recommendations handles POST /v1/assist/recommendations. The oracle picks
// ids; the reply carries the matching listings in canonical order.
func (h *RestAssistHandler) Recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ids := h.assistant.SmartRecommendations(c.Request.Context(), req.Query, h.listingService.AllProperties())
	properties := h.listingService.ApplyAIResultSet(ids)

	c.JSON(http.StatusOK, gin.H{"ids": ids, "data": properties})
}

// DescriptionRequest is the POST /v1/assist/description body.
type DescriptionRequest struct {
	Title     string   `json:"title" binding:"required"`
	Amenities []string `json:"amenities"`
}

// Description handles POST /v1/assist/description.
func (h *RestAssistHandler) Description(c *gin.Context) {
	var req DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": h.assistant.GenerateDescription(c.Request.Context(), req.Title, req.Amenities)})
}

// Summary handles POST /v1/assist/summary.
func (h *RestAssistHandler) Summary(c *gin.Context) {
	var req struct {
		PropertyID string `json:"propertyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, ok := h.listingService.FindPropertyByID(req.PropertyID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": h.assistant.PropertySummary(c.Request.Context(), *p)})
}

// TranslateRequest is the POST /v1/assist/translate body.
type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"targetLang" binding:"required"`
}

// Translate handles POST /v1/assist/translate.
func (h *RestAssistHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": h.assistant.Translate(c.Request.Context(), req.Text, req.TargetLang)})
}

// decodeImage accepts either a bare base64 string or a data URL and returns
// the raw bytes.
func decodeImage(encoded string) ([]byte, bool) {
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// AnalyzePhotosRequest is the POST /v1/assist/photos body. Images are
// base64-encoded JPEGs, optionally as data URLs.
type AnalyzePhotosRequest struct {
	Images []string `json:"images" binding:"required,min=1"`
}

// AnalyzePhotos handles POST /v1/assist/photos.
func (h *RestAssistHandler) AnalyzePhotos(c *gin.Context) {
	var req AnalyzePhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	images := make([][]byte, 0, len(req.Images))
	for _, encoded := range req.Images {
		data, ok := decodeImage(encoded)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image encoding"})
			return
		}
		images = append(images, data)
	}

	c.JSON(http.StatusOK, h.assistant.AnalyzePhotos(c.Request.Context(), images))
}

// ExtractIDDetails handles POST /v1/assist/id-details.
func (h *RestAssistHandler) ExtractIDDetails(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	data, ok := decodeImage(req.Image)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image encoding"})
		return
	}

	c.JSON(http.StatusOK, h.assistant.ExtractIDDetails(c.Request.Context(), data))
}

// DraftLeaseRequest is the POST /v1/assist/lease body.
type DraftLeaseRequest struct {
	OwnerName  string `json:"ownerName" binding:"required"`
	TenantName string `json:"tenantName" binding:"required"`
	Rent       int    `json:"rent" binding:"required,gt=0"`
	PropertyID string `json:"propertyId" binding:"required"`
}

// DraftLease handles POST /v1/assist/lease.
func (h *RestAssistHandler) DraftLease(c *gin.Context) {
	var req DraftLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, ok := h.listingService.FindPropertyByID(req.PropertyID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	agreement := h.assistant.DraftLease(c.Request.Context(), req.OwnerName, req.TenantName, req.Rent, p.Title)
	c.JSON(http.StatusOK, gin.H{"agreement": agreement})
}

// DiagnoseComplaint handles POST /v1/assist/complaint.
func (h *RestAssistHandler) DiagnoseComplaint(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	data, ok := decodeImage(req.Image)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image encoding"})
		return
	}

	c.JSON(http.StatusOK, h.assistant.DiagnoseComplaint(c.Request.Context(), data))
}

// SuggestRent handles POST /v1/assist/rent-suggestion.
func (h *RestAssistHandler) SuggestRent(c *gin.Context) {
	var req struct {
		PropertyID string `json:"propertyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, ok := h.listingService.FindPropertyByID(req.PropertyID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, h.assistant.SuggestRent(c.Request.Context(), *p))
}

// ChatSuggestions handles POST /v1/assist/chat-suggestions.
func (h *RestAssistHandler) ChatSuggestions(c *gin.Context) {
	var req struct {
		PropertyID string `json:"propertyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, ok := h.listingService.FindPropertyByID(req.PropertyID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": h.assistant.ChatSuggestions(c.Request.Context(), *p)})
}
