package handlers

import (
	"vitrine/internal/app"
	"vitrine/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	// Auth routes (no authentication required)
	authHandler := NewAuthHandler(services.AuthService)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Public directory and window-display routes. The window endpoints are
	// the polled read path for the status badge.
	windowHandler := NewWindowHandler(services.BusinessRepo, services.ServiceRepo, services.MediaRepo)
	api.GET("/window/:tag", windowHandler.Get)
	api.GET("/window/:tag/status", windowHandler.GetStatus)

	businessHandler := NewBusinessHandler(services.BusinessRepo, services.Publisher)
	categoryHandler := NewCategoryHandler(services.CategoryRepo)
	api.GET("/directory", businessHandler.List)
	api.GET("/categories", categoryHandler.List)

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))

	// User profile routes (authenticated users)
	profileAuth := protected.Group("/auth")
	profileAuth.PUT("/profile", authHandler.UpdateProfile)
	profileAuth.PUT("/change-password", authHandler.ChangePassword)

	// System admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireSystemAdmin())
	admin.GET("/businesses", businessHandler.AdminList)
	admin.POST("/businesses", businessHandler.AdminCreate)
	admin.GET("/businesses/:id", businessHandler.AdminGetByID)
	admin.DELETE("/businesses/:id", businessHandler.AdminDelete)

	admin.POST("/categories", categoryHandler.Create)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	userHandler := NewUserHandler(services.UserRepo, services.AuthService)
	admin.POST("/owners", userHandler.CreateOwner)
	admin.GET("/businesses/:business_id/users", userHandler.ListOwners)

	// Business owner routes (require an attached, active business)
	business := protected.Group("/business")
	business.Use(middleware.RequireOwnerOrAdmin())
	business.Use(middleware.RequireBusiness(services.DB))

	business.GET("/profile", businessHandler.GetProfile)
	business.PUT("/profile", businessHandler.UpdateProfile)

	// Operating hours editor
	scheduleHandler := NewScheduleHandler(services.BusinessRepo, services.Publisher)
	business.GET("/schedule", scheduleHandler.Get)
	business.PUT("/schedule", scheduleHandler.Update)
	business.PUT("/schedule/group", scheduleHandler.ApplyGroup)
	business.PUT("/schedule/override", scheduleHandler.UpdateOverride)

	// Offered services
	serviceHandler := NewServiceHandler(services.ServiceRepo)
	business.GET("/services", serviceHandler.List)
	business.POST("/services", serviceHandler.Create)
	business.PUT("/services/:id", serviceHandler.Update)
	business.DELETE("/services/:id", serviceHandler.Delete)

	// Gallery
	galleryHandler := NewGalleryHandler(services.MediaRepo, services.StorageService)
	business.GET("/gallery", galleryHandler.List)
	business.POST("/gallery", galleryHandler.Upload)
	business.DELETE("/gallery/:id", galleryHandler.Delete)
}
