package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/campuswell/campuswell-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Router   *gin.Engine
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig()

	serviceset, err := wireServices(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(cfg, serviceset)
	router := wireRouter(log, handlerset)

	log.Info("Counselling server wired",
		"mode", string(cfg.Mode),
		"primary_model", cfg.PrimaryModel,
		"fallback_model", cfg.SecondaryModel,
		"provider_configured", cfg.ProviderConfigured,
	)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Router:   router,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
