package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vivek9939947227/Asprints-Aada/internal/ai"
	"github.com/Vivek9939947227/Asprints-Aada/internal/api/middleware"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
	"github.com/Vivek9939947227/Asprints-Aada/internal/tasks"
	"github.com/Vivek9939947227/Asprints-Aada/internal/utils"
)

// RestInquiryHandler handles REST requests for inquiries.
type RestInquiryHandler struct {
	listingService services.IListingService
	assistant      ai.IAssistant
	taskClient     tasks.IClient
}

// NewRestInquiryHandler creates a new RestInquiryHandler.
func NewRestInquiryHandler(listingService services.IListingService, assistant ai.IAssistant, taskClient tasks.IClient) *RestInquiryHandler {
	return &RestInquiryHandler{
		listingService: listingService,
		assistant:      assistant,
		taskClient:     taskClient,
	}
}

// CreateInquiryRequest is the POST /v1/inquiry body.
type CreateInquiryRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	SenderName string `json:"senderName"`
	Message    string `json:"message" binding:"required"`
}

// Create handles POST /v1/inquiry. The message is annotated by the AI
// oracle exactly once, at send time; an oracle failure degrades to the
// neutral annotation and never blocks sending.
func (h *RestInquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry: " + err.Error()})
		return
	}

	p, ok := h.listingService.FindPropertyByID(req.PropertyID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = "Anonymous"
	}

	inquiry := models.Inquiry{
		ID:           utils.NewID(),
		PropertyID:   p.ID,
		PropertyName: p.Title,
		SenderName:   senderName,
		Message:      req.Message,
		Timestamp:    time.Now().UTC(),
		AIAnalysis:   h.assistant.AnalyzeInquiry(c.Request.Context(), req.Message),
	}

	h.listingService.AddInquiry(inquiry)

	if err := tasks.EnqueueInquiryNotify(h.taskClient, inquiry); err != nil {
		// The inquiry is already recorded; a lost digest is not fatal.
		log.Printf("Failed to enqueue inquiry digest for %s: %v", inquiry.ID, err)
	}

	c.JSON(http.StatusCreated, inquiry)
}

// ListForOwner handles GET /v1/owner/inquiry. Inquiries whose listing was
// deleted or belongs to someone else are excluded.
func (h *RestInquiryHandler) ListForOwner(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextKeyUserID)
	c.JSON(http.StatusOK, gin.H{"data": h.listingService.InquiriesForOwner(ownerID)})
}
