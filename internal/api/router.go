package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vivek9939947227/Asprints-Aada/internal/ai"
	"github.com/Vivek9939947227/Asprints-Aada/internal/api/handlers"
	"github.com/Vivek9939947227/Asprints-Aada/internal/api/middleware"
	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
	"github.com/Vivek9939947227/Asprints-Aada/internal/storage"
	"github.com/Vivek9939947227/Asprints-Aada/internal/tasks"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(
	cfg *config.Config,
	listingService services.IListingService,
	sessionService services.ISessionService,
	assistant ai.IAssistant,
	s3Storage storage.IS3Storage,
	taskClient tasks.IClient,
) *gin.Engine {
	r := gin.Default()

	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Global middleware, order matters
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(rateLimiter.Limit())

	sessionHandler := handlers.NewRestSessionHandler(sessionService)
	propertyHandler := handlers.NewRestPropertyHandler(listingService, s3Storage, taskClient)
	inquiryHandler := handlers.NewRestInquiryHandler(listingService, assistant, taskClient)
	assistHandler := handlers.NewRestAssistHandler(listingService, assistant)

	v1 := r.Group("/v1")
	{
		// Public routes
		v1.POST("/session", sessionHandler.Login)
		v1.GET("/session", sessionHandler.Current)

		v1.GET("/property", propertyHandler.Search)
		v1.GET("/property/:id", propertyHandler.GetByID)
		v1.GET("/property/:id/whatsapp", propertyHandler.WhatsAppLink)

		v1.POST("/inquiry", inquiryHandler.Create)

		assist := v1.Group("/assist")
		{
			assist.POST("/recommendations", assistHandler.Recommendations)
			assist.POST("/description", assistHandler.Description)
			assist.POST("/summary", assistHandler.Summary)
			assist.POST("/translate", assistHandler.Translate)
			assist.POST("/photos", assistHandler.AnalyzePhotos)
			assist.POST("/id-details", assistHandler.ExtractIDDetails)
			assist.POST("/lease", assistHandler.DraftLease)
			assist.POST("/complaint", assistHandler.DiagnoseComplaint)
			assist.POST("/rent-suggestion", assistHandler.SuggestRent)
			assist.POST("/chat-suggestions", assistHandler.ChatSuggestions)
		}

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Authenticated routes
		authRequired := v1.Group("/")
		authRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret))
		{
			authRequired.DELETE("/session", sessionHandler.Logout)

			authRequired.POST("/property", propertyHandler.Create)
			authRequired.POST("/property/:id/toggle", propertyHandler.ToggleAvailability)
			authRequired.DELETE("/property/:id", propertyHandler.Delete)
			authRequired.POST("/property/:id/photo-upload", propertyHandler.RequestPhotoUpload)
			authRequired.POST("/property/:id/photo-complete", propertyHandler.CompletePhotoUpload)

			authRequired.GET("/owner/property", propertyHandler.ListForOwner)
			authRequired.GET("/owner/inquiry", inquiryHandler.ListForOwner)
		}

		// Admin routes
		adminRequired := v1.Group("/admin")
		adminRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.AdminMiddleware())
		{
			adminRequired.GET("/property", propertyHandler.ListAll)
		}
	}

	return r
}
