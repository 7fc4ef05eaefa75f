package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-research-cms/config"
	v1 "health-research-cms/internal/delivery/http/v1"
	"health-research-cms/internal/metrics"
	"health-research-cms/internal/repository/postgres"
	"health-research-cms/internal/scheduler"
	"health-research-cms/internal/usecase"
	"health-research-cms/pkg/auth"
	"health-research-cms/pkg/database"
	"health-research-cms/pkg/email"
	"health-research-cms/pkg/logger"
	"health-research-cms/pkg/redis"
	"health-research-cms/pkg/storage"
	"health-research-cms/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting health research CMS backend", "port", cfg.Port)

	metrics.Register()

	dbPool, err := database.NewPostgresPool(context.Background(), database.PoolConfig{
		URL:      cfg.DBUrl,
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	fileStore, err := storage.NewFileStore(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to configure file storage", "error", err)
		os.Exit(1)
	}

	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	fileRepo := postgres.NewFileRepository(dbPool)
	newsRepo := postgres.NewNewsRepository(dbPool)
	eventRepo := postgres.NewEventRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	publicationRepo := postgres.NewPublicationRepository(dbPool)
	teamMemberRepo := postgres.NewTeamMemberRepository(dbPool)
	partnerRepo := postgres.NewPartnerRepository(dbPool)
	impactRepo := postgres.NewImpactRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be skipped")
	}

	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	validate := validator.New()
	validation.RegisterValidators(validate)

	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, validate)
	authUC := usecase.NewAuthUsecase(userRepo, tokenIssuer, emailService, cfg.FrontendURL,
		time.Duration(cfg.ResetTokenHours)*time.Hour)
	uploadUC := usecase.NewUploadUsecase(fileRepo, fileStore)
	newsUC := usecase.NewNewsUsecase(newsRepo)
	eventUC := usecase.NewEventUsecase(eventRepo)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	publicationUC := usecase.NewPublicationUsecase(publicationRepo)
	teamMemberUC := usecase.NewTeamMemberUsecase(teamMemberRepo)
	partnerUC := usecase.NewPartnerUsecase(partnerRepo)
	impactUC := usecase.NewImpactUsecase(impactRepo)
	contactUC := usecase.NewContactUsecase(contactRepo, emailService, validate)

	reconciler := scheduler.NewStatusReconciler(vacancyUC,
		time.Duration(cfg.ReconcileIntervalSeconds)*time.Second)
	if err := reconciler.Start(); err != nil {
		logger.Log.Error("Failed to start status reconciler", "error", err)
		os.Exit(1)
	}

	router := v1.NewRouter(v1.RouterDeps{
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		AuthUC:        authUC,
		UploadUC:      uploadUC,
		NewsUC:        newsUC,
		EventUC:       eventUC,
		ProjectUC:     projectUC,
		PublicationUC: publicationUC,
		TeamMemberUC:  teamMemberUC,
		PartnerUC:     partnerUC,
		ImpactUC:      impactUC,
		ContactUC:     contactUC,
		TokenIssuer:   tokenIssuer,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	reconciler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
