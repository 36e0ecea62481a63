package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vivek9939947227/Asprints-Aada/internal/api/middleware"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
	"github.com/Vivek9939947227/Asprints-Aada/internal/storage"
	"github.com/Vivek9939947227/Asprints-Aada/internal/tasks"
	"github.com/Vivek9939947227/Asprints-Aada/internal/utils"
)

// RestPropertyHandler handles REST requests for property listings.
type RestPropertyHandler struct {
	listingService services.IListingService
	s3Storage      storage.IS3Storage
	taskClient     tasks.IClient
}

// NewRestPropertyHandler creates a new RestPropertyHandler.
func NewRestPropertyHandler(listingService services.IListingService, s3Storage storage.IS3Storage, taskClient tasks.IClient) *RestPropertyHandler {
	return &RestPropertyHandler{
		listingService: listingService,
		s3Storage:      s3Storage,
		taskClient:     taskClient,
	}
}

// Search handles GET /v1/property. It serves the finder view: only
// available listings, optionally narrowed by free text and city.
func (h *RestPropertyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	city := c.DefaultQuery("city", services.CityFilterAll)

	matches := h.listingService.SearchByText(query, city)
	available := make([]models.Property, 0, len(matches))
	for _, p := range matches {
		if p.IsAvailable {
			available = append(available, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": available})
}

// GetByID handles GET /v1/property/:id. Availability does not hide the
// detail view; a direct link keeps working while a listing is paused.
func (h *RestPropertyHandler) GetByID(c *gin.Context) {
	p, ok := h.listingService.FindPropertyByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePropertyRequest is the POST /v1/property body. Identity and the
// price table are never client-supplied.
type CreatePropertyRequest struct {
	Title         string              `json:"title" binding:"required"`
	Type          models.PropertyType `json:"type" binding:"required"`
	Location      string              `json:"location" binding:"required"`
	City          string              `json:"city" binding:"required"`
	MonthlyPrice  int                 `json:"monthlyPrice" binding:"required,gt=0"`
	Description   string              `json:"description"`
	Amenities     []string            `json:"amenities"`
	OwnerWhatsApp string              `json:"ownerWhatsApp"`
	UpiID         string              `json:"upiId"`
	Images        []string            `json:"images"`
	VideoURL      string              `json:"videoUrl"`
	Lat           float64             `json:"lat"`
	Lng           float64             `json:"lng"`
	NearbyHubs    []string            `json:"nearbyHubs"`
}

// Create handles POST /v1/property. The server assigns the id, stamps the
// authenticated user as owner and derives the full price table from the
// monthly amount. New listings start available.
func (h *RestPropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property: " + err.Error()})
		return
	}

	p := models.Property{
		ID:            utils.NewID(),
		Title:         req.Title,
		Type:          req.Type,
		Location:      req.Location,
		City:          req.City,
		Price:         models.DerivePriceTable(req.MonthlyPrice),
		Description:   req.Description,
		Amenities:     req.Amenities,
		OwnerID:       c.GetString(middleware.ContextKeyUserID),
		OwnerName:     c.GetString(middleware.ContextKeyUserName),
		OwnerWhatsApp: req.OwnerWhatsApp,
		UpiID:         req.UpiID,
		Images:        req.Images,
		VideoURL:      req.VideoURL,
		Lat:           req.Lat,
		Lng:           req.Lng,
		IsAvailable:   true,
		NearbyHubs:    req.NearbyHubs,
	}

	h.listingService.AddProperty(p)
	c.JSON(http.StatusCreated, p)
}

// canManage reports whether the authenticated user may mutate the listing.
func canManage(c *gin.Context, p *models.Property) bool {
	if role, ok := c.Get(middleware.ContextKeyUserRole); ok && role.(models.Role) == models.RoleAdmin {
		return true
	}
	return p.OwnerID == c.GetString(middleware.ContextKeyUserID)
}

// ToggleAvailability handles POST /v1/property/:id/toggle.
func (h *RestPropertyHandler) ToggleAvailability(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.listingService.FindPropertyByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if !canManage(c, p) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this property"})
		return
	}

	h.listingService.ToggleAvailability(id)
	updated, _ := h.listingService.FindPropertyByID(id)
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/property/:id.
func (h *RestPropertyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.listingService.FindPropertyByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if !canManage(c, p) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this property"})
		return
	}

	h.listingService.DeleteProperty(id)
	c.Status(http.StatusNoContent)
}

// ListForOwner handles GET /v1/owner/property.
func (h *RestPropertyHandler) ListForOwner(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextKeyUserID)
	c.JSON(http.StatusOK, gin.H{"data": h.listingService.ListForOwner(ownerID)})
}

// PhotoUploadRequest is the POST /v1/property/:id/photo-upload body.
type PhotoUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// RequestPhotoUpload handles POST /v1/property/:id/photo-upload. It returns
// a presigned PUT URL; the browser uploads directly to the bucket.
func (h *RestPropertyHandler) RequestPhotoUpload(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.listingService.FindPropertyByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if !canManage(c, p) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this property"})
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload request: " + err.Error()})
		return
	}

	url, key, err := h.s3Storage.GeneratePresignedPutURL(c.Request.Context(), p.OwnerID, p.ID, req.Filename, req.ContentType)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadUrl": url, "key": key})
}

// PhotoCompleteRequest is the POST /v1/property/:id/photo-complete body.
type PhotoCompleteRequest struct {
	Key string `json:"key" binding:"required"`
}

// CompletePhotoUpload handles POST /v1/property/:id/photo-complete. The
// uploaded object is normalized in the background before it is attached to
// the listing.
func (h *RestPropertyHandler) CompletePhotoUpload(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.listingService.FindPropertyByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if !canManage(c, p) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this property"})
		return
	}

	var req PhotoCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completion request: " + err.Error()})
		return
	}

	if err := tasks.EnqueuePhotoProcess(h.taskClient, req.Key, id); err != nil {
		log.Printf("Failed to enqueue photo processing for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule photo processing"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "processing"})
}

// WhatsAppLink handles GET /v1/property/:id/whatsapp. It builds the wa.me
// deep link to the listing owner with an optional prefilled message.
func (h *RestPropertyHandler) WhatsAppLink(c *gin.Context) {
	p, ok := h.listingService.FindPropertyByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if p.OwnerWhatsApp == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Owner has no WhatsApp number"})
		return
	}

	text := c.DefaultQuery("text", "Hi, I found your listing \""+p.Title+"\" and I am interested.")
	c.JSON(http.StatusOK, gin.H{"link": utils.WhatsAppLink(p.OwnerWhatsApp, text)})
}

// ListAll handles GET /v1/admin/property: every listing regardless of
// availability.
func (h *RestPropertyHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.listingService.AllProperties()})
}
