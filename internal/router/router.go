package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campushub/campus-hub-api/api/swagger"
	"github.com/campushub/campus-hub-api/internal/handler"
	"github.com/campushub/campus-hub-api/internal/middleware"
	"github.com/campushub/campus-hub-api/internal/service"
	"github.com/campushub/campus-hub-api/pkg/config"
	"github.com/campushub/campus-hub-api/pkg/logger"
	corsmiddleware "github.com/campushub/campus-hub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushub/campus-hub-api/pkg/middleware/requestid"
)

// Deps bundles everything the router needs to register routes.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Auth    *service.AuthService
	Metrics *service.MetricsService

	AuthHandler    *handler.AuthHandler
	ItemHandler    *handler.ItemHandler
	EventHandler   *handler.EventHandler
	ContactHandler *handler.ContactHandler

	UploadsDir string
}

// New assembles the gin engine with middleware and all API routes.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if deps.UploadsDir != "" {
		r.Static("/uploads", deps.UploadsDir)
	}

	requireAuth := middleware.JWT(deps.Auth)

	api := r.Group(deps.Config.APIPrefix)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
			auth.GET("/me", requireAuth, deps.AuthHandler.Me)
		}

		items := api.Group("/items")
		{
			items.GET("", deps.ItemHandler.Search)
			items.GET("/:id", deps.ItemHandler.Get)
			items.POST("", requireAuth, deps.ItemHandler.Create)
			items.POST("/:id/resolve", requireAuth, deps.ItemHandler.Resolve)
		}

		events := api.Group("/events")
		{
			events.GET("", deps.EventHandler.List)
			events.POST("", requireAuth, deps.EventHandler.Create)
		}

		api.POST("/contact", requireAuth, deps.ContactHandler.Contact)
	}

	return r
}
