package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret([]byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"success": false,
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)

		// Public read-only mirrors for the marketing pages, plus the two
		// public submission forms.
		api.GET("/trips", h.GetTrips)
		api.GET("/destinations", h.GetDestinations)
		api.GET("/service", h.GetServices)
		api.GET("/testimonials", h.GetTestimonials)
		api.POST("/testimonials", h.SubmitTestimonial)
		api.GET("/gallery", h.GetGalleryItems)
		api.POST("/lead", h.SubmitLead)

		// Back office: session required, role must be admin.
		admin := api.Group("/admin",
			middleware.SessionGate([]byte(env.JWTSecret)),
			middleware.RequireAdmin(),
		)
		{
			trips := admin.Group("/trips")
			trips.GET("", h.GetTrips)
			trips.POST("", h.CreateTrip)
			trips.PUT("", h.UpdateTrip)
			trips.DELETE("", h.DeleteTrip)

			destinations := admin.Group("/destinations")
			destinations.GET("", h.GetDestinations)
			destinations.POST("", h.CreateDestination)
			destinations.PUT("", h.UpdateDestination)
			destinations.DELETE("", h.DeleteDestination)

			service := admin.Group("/service")
			service.GET("", h.GetServices)
			service.POST("", h.CreateService)
			service.PUT("", h.UpdateService)
			service.DELETE("", h.DeleteService)

			testimonials := admin.Group("/testimonials")
			testimonials.GET("", h.GetTestimonials)
			testimonials.POST("", h.CreateTestimonial)
			testimonials.PUT("", h.UpdateTestimonial)
			testimonials.DELETE("", h.DeleteTestimonial)

			gallery := admin.Group("/gallery")
			gallery.GET("", h.GetGalleryItems)
			gallery.POST("", h.AppendGalleryImages)
			gallery.PUT("", h.ReplaceGalleryImages)
			gallery.DELETE("", h.DeleteGalleryItem)

			clients := admin.Group("/clients")
			clients.GET("", h.GetLeads)
			clients.DELETE("", h.DeleteLead)
			clients.GET("/export", h.ExportLeadsPDF)
		}
	}

	// The admin SPA entry point goes through the same gate so an anonymous
	// browser hit on /admin is bounced to the login page.
	r.GET("/admin", middleware.SessionGate([]byte(env.JWTSecret)), middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(stdhttp.StatusOK, gin.H{"message": "admin console", "success": true})
	})

	return r
}
