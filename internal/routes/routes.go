package routes

import (
	"net/http"

	"terek_backend/internal/handlers"
	"terek_backend/internal/middleware"
	"terek_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full HTTP and WebSocket surface.
func RegisterRoutes(
	router *gin.Engine,
	h *handlers.AppHandlers,
	feedHandler *ws.FeedHandler,
) {
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth
		api.POST("/auth/register", h.AuthHandler.Register)
		api.POST("/auth/login", h.AuthHandler.Login)

		// Public catalog and content
		api.GET("/locations", h.CatalogHandler.ListLocations)
		api.GET("/locations/:id", h.CatalogHandler.GetLocation)
		api.GET("/packages", h.CatalogHandler.ListPackages)
		api.GET("/packages/by-location/:id", h.CatalogHandler.ListPackagesByLocation)
		api.GET("/news", h.NewsHandler.List)
		api.GET("/news/:id", h.NewsHandler.Get)
		api.POST("/inquiries", h.InquiryHandler.Submit)

		// Guest checkout: identity resolution happens inside
		api.POST("/guest-donations", h.DonationHandler.CreateGuest)
		api.POST("/guest-donations/:id/payment", h.DonationHandler.InitiateGuestPayment)

		// The waiting page polls this without a session
		api.GET("/donations/:id/status", h.DonationHandler.Status)

		// Gateway callback, authenticated by signature instead of a token
		api.POST("/webhooks/ioka", h.WebhookHandler.HandleIoka)
	}

	authenticated := router.Group("/api")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.POST("/auth/logout", h.AuthHandler.Logout)

		authenticated.POST("/donations", h.DonationHandler.Create)
		authenticated.GET("/donations/:id", h.DonationHandler.Get)
		authenticated.POST("/donations/:id/payment", h.DonationHandler.InitiatePayment)

		authenticated.GET("/users/me", h.UserHandler.Me)
		authenticated.PUT("/users/me", h.UserHandler.UpdateMe)
		authenticated.GET("/users/me/donations", h.DonationHandler.ListMine)
		authenticated.GET("/users/me/certificates", h.UserHandler.MyCertificates)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", h.AdminHandler.ListUsers)
		admin.PUT("/users/:id", h.AdminHandler.UpdateUser)
		admin.DELETE("/users/:id", h.AdminHandler.DeleteUser)

		admin.GET("/donations", h.AdminHandler.ListDonations)
		admin.PUT("/donations/:id", h.AdminHandler.UpdateDonation)
		admin.POST("/donations/:id/refund", h.AdminHandler.RefundDonation)

		admin.POST("/locations", h.AdminHandler.CreateLocation)
		admin.PUT("/locations/:id", h.AdminHandler.UpdateLocation)
		admin.DELETE("/locations/:id", h.AdminHandler.DeleteLocation)

		admin.POST("/packages", h.AdminHandler.CreatePackage)
		admin.PUT("/packages/:id", h.AdminHandler.UpdatePackage)
		admin.DELETE("/packages/:id", h.AdminHandler.DeletePackage)

		admin.GET("/news", h.AdminHandler.ListNews)
		admin.POST("/news", h.AdminHandler.CreateNews)
		admin.PUT("/news/:id", h.AdminHandler.UpdateNews)
		admin.DELETE("/news/:id", h.AdminHandler.DeleteNews)

		admin.GET("/inquiries", h.AdminHandler.ListInquiries)
		admin.GET("/reports/donations", h.AdminHandler.DonationSummary)
	}

	// Live donation feed, public
	router.GET("/ws/feed", feedHandler.ServeFeed)
}
