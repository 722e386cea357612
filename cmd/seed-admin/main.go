// Command seed-admin creates the account used to sign in to the admin API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/config"
	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/internal/storage"
	"github.com/bhagyamlottery/agency-backend/pkg/jwt"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath = flag.String("config", ".", "directory holding config.yaml")
		email      = flag.String("email", "", "admin email (default Admin.Email / ADMIN_EMAIL)")
		password   = flag.String("password", "", "admin password, at least 8 characters (default ADMIN_PASSWORD)")
		reset      = flag.Bool("reset", false, "remove every existing user first (default ADMIN_RESET)")
	)
	flag.Parse()

	if err := run(*configPath, *email, *password, *reset); err != nil {
		logger.GetLogger("app").Errorf("Failed to seed admin: %v", err)
		os.Exit(1)
	}
}

func run(configPath, email, password string, reset bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("initialise logging: %w", err)
	}
	defer logger.Close()

	// Flags given on the command line win over the configuration
	if email == "" {
		email = cfg.Admin.Email
	}
	if password == "" {
		password = cfg.Admin.Password
	}
	if !flag.CommandLine.Changed("reset") {
		reset = cfg.Admin.Reset
	}
	if password == "" {
		return errors.New("a password is required (--password or ADMIN_PASSWORD)")
	}
	if cfg.Storage.Driver == config.StorageMemory {
		return errors.New("the memory storage driver does not persist users, use mongodb")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repos, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repos.Close(context.Background())

	tokens := jwt.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)
	authService := services.NewAuthService(repos.Users, tokens)

	user, err := authService.SeedAdmin(ctx, email, password, reset)
	if err != nil {
		return err
	}
	logger.GetLogger("app").WithField("email", user.Email).WithField("reset", reset).Info("Admin user created")
	return nil
}
