package routes

import (
	"tenant-portal-backend/internal/api/handlers"
	"tenant-portal-backend/internal/api/middleware"
	"tenant-portal-backend/internal/auth"
	"tenant-portal-backend/internal/config"
	"tenant-portal-backend/internal/database"
	"tenant-portal-backend/internal/repository"
	"tenant-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *database.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	tenantRepo := repository.NewTenantStoreRepository(db)

	// Initialize services
	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
		Issuer:    "tenant-portal-backend",
	})
	if err != nil {
		return nil, err
	}
	organizationService := service.NewOrganizationService(organizationRepo, adminRepo, tenantRepo, validate)

	// Initialize handlers
	authHandler := auth.NewAuthHandler(authService, adminRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, authService, adminRepo)
	healthHandler := handlers.NewHealthHandler(db)

	// Health endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
		}

		org := v1.Group("/org")
		{
			org.POST("/create", organizationHandler.CreateOrganization)
			org.GET("/get", organizationHandler.GetOrganization)
			org.PUT("/update", authMiddleware.RequireAuth(), organizationHandler.UpdateOrganization)
			org.DELETE("/delete", authMiddleware.RequireAuth(), organizationHandler.DeleteOrganization)

			storage := org.Group("/storage", authMiddleware.RequireAuth())
			{
				storage.GET("/audit", organizationHandler.AuditStorage)
				storage.DELETE("/orphans/:collection", organizationHandler.PurgeOrphan)
			}
		}
	}

	return router, nil
}
