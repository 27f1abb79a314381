package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/backend/internal/config"
	"portfolio/backend/internal/db"
	"portfolio/backend/internal/handler"
	transport "portfolio/backend/internal/http"
	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/network"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/service/ai"
	"portfolio/backend/internal/service/media"
	"portfolio/backend/internal/service/telegram"
	"portfolio/backend/internal/snowflake"
)

// @title Portfolio API
// @version 1.0
// @description Multilingual portfolio content, contact messages and media uploads.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

const (
	shutdownTimeout = 10 * time.Second
	outboundTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), logger.ParseFormat(cfg.LogFormat))

	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	policy, err := service.ParseTranslationPolicy(cfg.TranslationPolicy)
	if err != nil {
		log.Fatalf("translation policy: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()
	logger.Info("database ready", "module", "main", "action", "init", "resource", "database", "result", "ok", "path", cfg.DBPath)

	userRepo := repository.NewUserRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)
	experienceRepo := repository.NewExperienceRepository(dbConn)
	educationRepo := repository.NewEducationRepository(dbConn)
	contactRepo := repository.NewContactRepository(dbConn)

	clientFactory := network.NewClientFactory(cfg.ProxyURL)
	outbound := clientFactory.NewHTTPClient(outboundTimeout)

	authService := service.NewAuthService(userRepo, jwtSecret(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	ensureOperator(authService, userRepo, cfg.Auth)

	notifier, err := telegram.NewNotifier(telegram.Config{
		Token:      cfg.Telegram.BotToken,
		ChatID:     cfg.Telegram.ChatID,
		HTTPClient: outbound,
	})
	if err != nil {
		log.Fatalf("init telegram notifier: %v", err)
	}
	if !notifier.Enabled() {
		logger.Warn("telegram notifications disabled", "module", "main", "action", "init", "resource", "telegram", "result", "skipped")
	}

	var mediaStore service.MediaStore
	if cfg.Cloudinary.URL != "" {
		store, err := media.NewCloudinaryStore(cfg.Cloudinary.URL, cfg.Cloudinary.Folder, outbound)
		if err != nil {
			log.Fatalf("init media store: %v", err)
		}
		mediaStore = store
	} else {
		logger.Warn("image uploads disabled", "module", "main", "action", "init", "resource", "upload", "result", "skipped")
	}

	var provider ai.Provider
	if cfg.AI.Enabled() {
		provider, err = ai.NewProvider(ai.Config{
			Provider:   cfg.AI.Provider,
			APIKey:     cfg.AI.APIKey,
			BaseURL:    cfg.AI.BaseURL,
			Model:      cfg.AI.Model,
			HTTPClient: clientFactory.NewHTTPClient(2 * time.Minute),
		})
		if err != nil {
			log.Fatalf("init ai provider: %v", err)
		}
		logger.Info("translation drafts enabled", "module", "main", "action", "init", "resource", "ai", "result", "ok", "provider", provider.Name())
	}

	projectService := service.NewProjectService(projectRepo, policy)
	experienceService := service.NewExperienceService(experienceRepo, policy)
	educationService := service.NewEducationService(educationRepo, policy)
	contactService := service.NewContactService(contactRepo, notifier)
	uploadService := service.NewUploadService(mediaStore)
	draftService := service.NewTranslationDraftService(provider, ai.NewRateLimiter(cfg.AI.RateLimit))
	summaryService := service.NewSummaryService(projectRepo, experienceRepo, educationRepo, contactRepo)

	router := transport.NewRouter(authService, transport.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Projects:    handler.NewProjectHandler(projectService),
		Experiences: handler.NewExperienceHandler(experienceService),
		Education:   handler.NewEducationHandler(educationService),
		Contacts:    handler.NewContactHandler(contactService),
		Upload:      handler.NewUploadHandler(uploadService),
		Admin:       handler.NewAdminHandler(draftService, summaryService),
	}, transport.Options{
		StaticDir:   cfg.StaticDir,
		FrontendURL: cfg.FrontendURL,
		ContactRate: cfg.ContactRate,
	})

	go func() {
		logger.Info("server starting", "module", "main", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "translation_policy", string(policy))
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("start server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down", "module", "main", "action", "stop", "resource", "http", "result", "ok")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "module", "main", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}

// jwtSecret returns the configured secret or a random one. A random secret
// invalidates every token on restart.
func jwtSecret(configured string) []byte {
	if configured != "" {
		return []byte(configured)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("generate jwt secret: %v", err)
	}
	logger.Warn("PORTFOLIO_JWT_SECRET not set, using a random secret", "module", "main", "action", "init", "resource", "auth", "result", "ok")
	return secret
}

func ensureOperator(authService service.AuthService, users repository.UserRepository, cfg config.AuthConfig) {
	ctx := context.Background()
	if cfg.AdminEmail != "" {
		if err := authService.EnsureOperator(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("ensure operator: %v", err)
		}
		return
	}
	count, err := users.Count(ctx)
	if err != nil {
		log.Fatalf("count operators: %v", err)
	}
	if count == 0 {
		logger.Warn("no operator account, admin routes are unusable", "module", "main", "action", "init", "resource", "auth", "result", "skipped")
	}
}
