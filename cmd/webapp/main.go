package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-api/internal/webapp"
	"github.com/noah-isme/tutor-api/pkg/config"
	"github.com/noah-isme/tutor-api/pkg/logger"
)

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

	client := webapp.NewClient(cfg.WebApp.APIBaseURL, cfg.WebApp.APITimeout)
	r, err := webapp.NewEngine(webapp.NewHandler(client, logr), logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to load templates", "error", err)
	}

	addr := fmt.Sprintf(":%d", cfg.WebApp.Port)
	logr.Sugar().Infow("webapp starting", "addr", addr, "api", cfg.WebApp.APIBaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("webapp failed", "error", err)
	}
}
