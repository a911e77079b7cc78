package app

import (
	"github.com/campuswell/campuswell-backend/internal/counsel/classify"
	"github.com/campuswell/campuswell-backend/internal/counsel/crisis"
	"github.com/campuswell/campuswell-backend/internal/counsel/remote"
	"github.com/campuswell/campuswell-backend/internal/platform/groq"
	"github.com/campuswell/campuswell-backend/internal/platform/logger"
	"github.com/campuswell/campuswell-backend/internal/ratelimit"
	"github.com/campuswell/campuswell-backend/internal/services"
)

type Services struct {
	Chat services.ChatService
}

func wireServices(log *logger.Logger, cfg Config) (Services, error) {
	detector := crisis.NewDetector()
	classifier := classify.NewEngine()

	var limiter *ratelimit.Limiter
	var engine *remote.Engine
	if cfg.Mode == services.ModeRemote {
		client, err := groq.NewClient(log)
		if err != nil {
			return Services{}, err
		}
		engine, err = remote.NewEngine(client, remote.Config{
			PrimaryModel:   cfg.PrimaryModel,
			SecondaryModel: cfg.SecondaryModel,
			MaxTurns:       cfg.MaxHistoryTurns,
			MaxTurnChars:   cfg.MaxTurnChars,
			Temperature:    cfg.Temperature,
			MaxTokens:      cfg.MaxTokens,
			TopP:           cfg.TopP,
		}, log)
		if err != nil {
			return Services{}, err
		}
		limiter = ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMax)
	}

	chat, err := services.NewChatService(cfg.Mode, detector, classifier, limiter, engine, log)
	if err != nil {
		return Services{}, err
	}
	return Services{Chat: chat}, nil
}
