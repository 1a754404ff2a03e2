package routes

import (
	"broker-crm-backend/internal/api/handlers"
	"broker-crm-backend/internal/api/middleware"
	"broker-crm-backend/internal/auth"
	"broker-crm-backend/internal/config"
	"broker-crm-backend/internal/repository"
	"broker-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	brokerRepo := repository.NewBrokerRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	distributionRepo := repository.NewDistributionRepository(db)
	csvImportRepo := repository.NewCsvImportRepository(db)

	// Initialize services
	importService := service.NewLeadImportService(
		brokerRepo, teamMemberRepo, leadRepo, distributionRepo, csvImportRepo,
		validate, cfg.ImportBatchSize, cfg.ImportMaxRows,
	)
	brokerService := service.NewBrokerService(brokerRepo, validate)
	leadService := service.NewLeadService(brokerRepo, leadRepo, validate)
	distributionService := service.NewDistributionService(brokerRepo, distributionRepo, validate)
	teamMemberService := service.NewTeamMemberService(brokerRepo, teamMemberRepo, validate)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	importHandler := handlers.NewImportHandler(importService)
	brokerHandler := handlers.NewBrokerHandler(brokerService)
	leadHandler := handlers.NewLeadHandler(leadService)
	distributionHandler := handlers.NewDistributionHandler(distributionService)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/import", importHandler.ImportLeads)
			admin.POST("/import/status-preview", importHandler.PreviewStatuses)
			admin.GET("/imports", importHandler.ImportHistory)

			admin.GET("/brokers", brokerHandler.ListBrokers)
			admin.POST("/brokers", brokerHandler.CreateBroker)
			admin.GET("/brokers/:id", brokerHandler.GetBroker)
			admin.PUT("/brokers/:id", brokerHandler.UpdateBroker)
			admin.DELETE("/brokers/:id", brokerHandler.DeleteBroker)
		}

		// Distribution settings routes
		settings := v1.Group("/settings")
		{
			settings.GET("/lead-distribution", distributionHandler.GetSettings)
			settings.PUT("/lead-distribution", distributionHandler.UpdateSettings)
		}

		// Team member routes
		teamMembers := v1.Group("/team-members")
		{
			teamMembers.GET("", teamMemberHandler.ListTeamMembers)
			teamMembers.POST("", teamMemberHandler.CreateTeamMember)
			teamMembers.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
		}

		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.POST("/bulk-delete", leadHandler.BulkDeleteLeads)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
		}
	}

	return router
}
