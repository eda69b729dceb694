package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"notebook/docs"
	"notebook/internal/auth"
	"notebook/internal/cache"
	"notebook/internal/config"
	"notebook/internal/db"
	"notebook/internal/handler"
	"notebook/internal/model"
	"notebook/internal/repository"
	"notebook/internal/router"
	"notebook/internal/service"
)

const (
	adminEmail           = "admin@localhost"
	adminName            = "System Administrator"
	adminInitialPassword = "change-me-immediately"
)

// @title Notebook API
// @version 0.2.2
// @description Multi-tenant notebook API with per-user token authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.
func main() {
	cfg := config.Load()

	if cfg.JWTSecretIsDefault {
		log.Println("WARNING: JWT_SECRET is not set, using an insecure development default. Set JWT_SECRET in production.")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Notebook{},
		&model.Note{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	notebookRepo := repository.NewNotebookRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewPasswordHasher()
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	if err := ensureAdminUser(context.Background(), userRepo, hasher); err != nil {
		// Non-fatal: the deployment still works, the admin just has to be
		// created manually (cmd/seed).
		log.Printf("WARNING: failed to ensure admin user: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokenService)
	notebookService := service.NewNotebookService(notebookRepo, cacheClient)
	noteService := service.NewNoteService(noteRepo, notebookService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	configHandler := handler.NewConfigHandler(cfg)
	notebookHandler := handler.NewNotebookHandler(notebookService)
	noteHandler := handler.NewNoteHandler(noteService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenService,
		authHandler,
		configHandler,
		notebookHandler,
		noteHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	docs.SwaggerInfo.Host = swaggerHost
	log.Printf("Swagger documentation available at: http://%s/docs/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// ensureAdminUser creates the default administrator record on first boot.
func ensureAdminUser(ctx context.Context, users repository.UserRepository, hasher *auth.PasswordHasher) error {
	if _, err := users.FindByEmail(ctx, adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := hasher.Hash(adminInitialPassword)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.New(),
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Name:         adminName,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Another replica seeded it first.
			return nil
		}
		return err
	}

	log.Printf("Admin user created. Email: %s, Password: %s", adminEmail, adminInitialPassword)
	log.Println("IMPORTANT: Change the admin password immediately after first login!")
	return nil
}
