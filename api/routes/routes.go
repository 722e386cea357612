package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bhagyamlottery/agency-backend/internal/config"
	"github.com/bhagyamlottery/agency-backend/internal/handlers"
	"github.com/bhagyamlottery/agency-backend/internal/middleware"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/internal/web"
	"github.com/bhagyamlottery/agency-backend/pkg/uploads"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds everything the router wires together
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	ResultHandler    *handlers.ResultHandler
	TicketHandler    *handlers.TicketHandler
	DashboardHandler *handlers.DashboardHandler
	SiteHandler      *handlers.SiteHandler
	Uploads          *uploads.Store

	Tokens      middleware.TokenParser
	AuthService services.AuthService
}

// SetupRouter builds the gin engine with the API, the public site and the static file routes
func SetupRouter(cfg *config.Config, deps HandlerDependencies) (*gin.Engine, error) {
	router := gin.New()
	router.MaxMultipartMemory = cfg.Uploads.MaxMemoryMB << 20

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	protect := middleware.Protect(deps.Tokens, deps.AuthService)
	admin := middleware.Admin()
	uploadLimit := middleware.MaxBodySize(cfg.Uploads.MaxMemoryMB << 20)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.GET("/profile", protect, deps.AuthHandler.Profile)
		}

		results := api.Group("/results")
		{
			results.GET("", deps.ResultHandler.GetResults)
			results.GET("/:id", deps.ResultHandler.GetResult)
			results.POST("", protect, admin, uploadLimit, deps.ResultHandler.CreateResult)
			results.DELETE("/:id", protect, admin, deps.ResultHandler.DeleteResult)
		}

		tickets := api.Group("/tickets")
		{
			tickets.GET("", deps.TicketHandler.GetTickets)
			tickets.GET("/:id", deps.TicketHandler.GetTicket)
			tickets.POST("", protect, admin, uploadLimit, deps.TicketHandler.CreateTicket)
			tickets.DELETE("/:id", protect, admin, deps.TicketHandler.DeleteTicket)
		}

		api.GET("/dashboard/stats", protect, admin, deps.DashboardHandler.GetStats)
	}

	staticFS, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("load static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(staticFS))
	router.Static(deps.Uploads.URLPrefix(), deps.Uploads.Dir())

	site := deps.SiteHandler
	router.GET("/", site.Home)
	router.GET("/about", site.About)
	router.GET("/results", site.Results)
	router.GET("/tickets", site.Tickets)
	router.GET("/contact", site.Contact)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		site.NotFound(c)
	})

	return router, nil
}
