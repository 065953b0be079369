// server/internal/api/routes/routes.go
package routes

import (
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/api/handlers"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/api/middleware"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/socket"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter receives the shared dependencies and wires every route group.
func SetupRouter(
	store database.Store,
	uploader *storage.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Initialize the handlers
	authHandler := &handlers.AuthHandler{Store: store}
	functionHandler := &handlers.FunctionHandler{Store: store}
	profileHandler := &handlers.ProfileHandler{Store: store}
	plotHandler := &handlers.PlotHandler{Store: store}
	treeHandler := &handlers.TreeHandler{Store: store}
	growthHandler := &handlers.GrowthHandler{Store: store, Hub: wsHub}
	speciesHandler := &handlers.SpeciesHandler{Store: store}
	imageHandler := &handlers.ImageHandler{Store: store, Uploader: uploader}
	exportHandler := &handlers.ExportHandler{Store: store}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		// WebSocket live feed (token via query param)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === ROUTES WITHOUT AUTHENTICATION ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// === PROTECTED ROUTES ===
		// Everything below passes through the Authenticate middleware first.

		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate())
		{
			// Callable procedures
			functions := protected.Group("/functions")
			{
				functions.POST("/createUserProfile", functionHandler.CreateUserProfile)
				functions.POST("/syncUserClaims", functionHandler.SyncUserClaims)
			}

			// Own profile
			protected.GET("/profile", profileHandler.GetMyProfile)
			protected.PUT("/profile", profileHandler.UpdateMyProfile)

			// Plots
			plots := protected.Group("/plots")
			{
				plots.GET("/", plotHandler.GetAllPlots)
				plots.GET("/:id", plotHandler.GetPlotByID)
				plots.GET("/:id/trees", treeHandler.GetTreesByPlot)
				plots.GET("/:id/growth-logs", growthHandler.GetGrowthLogsByPlot)
				plots.GET("/:id/images", imageHandler.GetPlotImages)
			}

			// Trees
			trees := protected.Group("/trees")
			{
				trees.GET("/code/:code", treeHandler.GetTreeByCode)
				trees.GET("/:id/growth-logs", growthHandler.GetGrowthLogsByTree)
			}

			// Species catalog
			protected.GET("/species", speciesHandler.GetAllSpecies)

			// Exports
			exports := protected.Group("/exports")
			{
				exports.GET("/growth-logs.csv", exportHandler.ExportGrowthLogsCSV)
				exports.GET("/growth-logs.xlsx", exportHandler.ExportGrowthLogsXLSX)
			}

			// Field-survey writes require an approved writer role
			writes := protected.Group("/")
			writes.Use(middleware.RequireWrite())
			{
				writes.POST("/plots", plotHandler.CreatePlot)
				writes.PUT("/plots/:id", plotHandler.UpdatePlot)
				writes.POST("/trees", treeHandler.CreateTree)
				writes.PUT("/trees/:id", treeHandler.UpdateTree)
				writes.POST("/growth-logs", growthHandler.SubmitGrowthLog)
				writes.POST("/species", speciesHandler.CreateSpecies)
				writes.POST("/plots/:id/images", imageHandler.UploadPlotImage)
			}

			// Administration, requires the "admin" role
			admin := protected.Group("/admin")
			admin.Use(middleware.Authorize(models.RoleAdmin))
			{
				admin.GET("/profiles", profileHandler.ListProfiles)
				admin.PUT("/profiles/:id/role", profileHandler.UpdateUserRole)
				admin.DELETE("/plots/:id", plotHandler.DeletePlot)
				admin.DELETE("/trees/:id", treeHandler.DeleteTree)
				admin.DELETE("/growth-logs/:id", growthHandler.DeleteGrowthLog)
				admin.DELETE("/plot-images/:id", imageHandler.DeletePlotImage)
			}
		}
	}

	return router
}
