package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tutor-api/api/swagger"
	"github.com/noah-isme/tutor-api/internal/handler"
	"github.com/noah-isme/tutor-api/internal/repository"
	"github.com/noah-isme/tutor-api/internal/router"
	"github.com/noah-isme/tutor-api/internal/service"
	"github.com/noah-isme/tutor-api/pkg/cache"
	"github.com/noah-isme/tutor-api/pkg/config"
	"github.com/noah-isme/tutor-api/pkg/database"
	"github.com/noah-isme/tutor-api/pkg/logger"
)

// @title Tutor API
// @version 1.0.0
// @description Teachers and the courses they offer.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.DB, logr); err != nil {
			logr.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	rdb, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect redis", zap.Error(err))
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	teacherSvc := service.NewTeacherService(repository.NewTeacherRepository(db), validate, metrics, logr)
	courseSvc := service.NewCourseService(repository.NewCourseRepository(db), validate, metrics, logr)
	exportSvc := service.NewExportService(teacherSvc, courseSvc, logr)

	healthSvc := service.NewHealthService(cfg.Health.Response, metrics, logr)
	healthSvc.AddDependency("postgres", db)
	if rdb != nil {
		defer rdb.Close()
		healthSvc.AddDependency("redis", rdb)
	}

	handlers := &handler.Handlers{
		Teacher: handler.NewTeacherHandler(teacherSvc),
		Course:  handler.NewCourseHandler(courseSvc, exportSvc),
		Health:  handler.NewHealthHandler(healthSvc, metrics),
	}

	r := router.New(handlers, router.Options{
		Logger:         logr,
		Metrics:        metrics,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
