package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bhagyamlottery/agency-backend/api/routes"
	"github.com/bhagyamlottery/agency-backend/internal/config"
	"github.com/bhagyamlottery/agency-backend/internal/handlers"
	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/internal/storage"
	"github.com/bhagyamlottery/agency-backend/internal/web"
	"github.com/bhagyamlottery/agency-backend/pkg/jwt"
	"github.com/bhagyamlottery/agency-backend/pkg/uploads"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.GetLogger("app")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("Failed to initialise logging: %v", err)
	}
	defer logger.Close()
	gin.SetMode(cfg.Server.Mode)

	repos, err := storage.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			log.Errorf("Error closing storage: %v", err)
		}
	}()
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
	}

	files, err := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.URLPrefix, cfg.Uploads.AllowedExtensions)
	if err != nil {
		log.Fatalf("Failed to prepare uploads: %v", err)
	}
	templates, err := web.Templates()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	tokens := jwt.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	resultService := services.NewResultService(repos.Results)
	ticketService := services.NewTicketService(repos.Tickets)
	authService := services.NewAuthService(repos.Users, tokens)
	dashboardService := services.NewDashboardService(repos.Results, repos.Tickets)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		ResultHandler:    handlers.NewResultHandler(resultService, files),
		TicketHandler:    handlers.NewTicketHandler(ticketService, files),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService),
		SiteHandler:      handlers.NewSiteHandler(resultService, ticketService, templates, cfg.Site.DefaultLanguage),
		Uploads:          files,
		Tokens:           tokens,
		AuthService:      authService,
	}

	router, err := routes.SetupRouter(cfg, handlerDeps)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}
