package app

import (
	"github.com/campuswell/campuswell-backend/internal/http/handlers"
)

type Handlers struct {
	Chat        *handlers.ChatHandler
	Health      *handlers.HealthHandler
	Suggestions *handlers.SuggestionsHandler
	Status      *handlers.StatusHandler
}

func wireHandlers(cfg Config, serviceset Services) Handlers {
	return Handlers{
		Chat:        handlers.NewChatHandler(serviceset.Chat, cfg.MaxMessageChars),
		Health:      handlers.NewHealthHandler(),
		Suggestions: handlers.NewSuggestionsHandler(),
		Status:      handlers.NewStatusHandler(serviceset.Chat, cfg.ProviderConfigured),
	}
}
