package routes

import (
	"studio-console/internal/api/handlers"
	"studio-console/internal/api/middleware"
	"studio-console/internal/config"
	"studio-console/internal/service"
	"studio-console/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, console service.ConsoleInterface, hub *ws.Hub, realtime handlers.ConnectionStatus) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	healthHandler := handlers.NewHealthHandler(realtime, console)
	consoleHandler := handlers.NewConsoleHandler(console, validator)
	wsHandler := handlers.NewWSHandler(hub, cfg.AllowedOrigins)

	// Health checks
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		episode := v1.Group("/episode")
		{
			episode.GET("", consoleHandler.GetEpisode)
			episode.POST("", consoleHandler.SelectEpisode)
			episode.DELETE("", consoleHandler.LeaveEpisode)
		}

		scenes := v1.Group("/scenes/:scene")
		{
			scenes.GET("/sources", consoleHandler.GetSources)
			scenes.POST("/load", consoleHandler.LoadScene)
			scenes.POST("/save-order", consoleHandler.SaveOrder)
			scenes.POST("/sources/:source/switch", consoleHandler.Switch)
			scenes.POST("/sources/:source/toggle", consoleHandler.Toggle)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.GET("", consoleHandler.GetAssignments)
			assignments.POST("/refresh", consoleHandler.RefreshAssignments)
			assignments.POST("/auto", consoleHandler.AutoAssign)
		}

		sources := v1.Group("/sources/:source")
		{
			sources.POST("/assign", consoleHandler.Assign)
			sources.POST("/workflow", consoleHandler.OpenWorkflow)
		}

		workflow := v1.Group("/workflow")
		{
			workflow.POST("/choose", consoleHandler.ChooseInWorkflow)
			workflow.DELETE("", consoleHandler.CloseWorkflow)
		}

		volumes := v1.Group("/volumes")
		{
			volumes.GET("/:source", consoleHandler.GetVolume)
			volumes.PUT("/:source", consoleHandler.SetVolume)
		}

		v1.GET("/ws", wsHandler.Stream)
	}

	return router
}
