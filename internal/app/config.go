package app

import (
	"os"
	"strings"
	"time"

	"github.com/campuswell/campuswell-backend/internal/platform/envutil"
	"github.com/campuswell/campuswell-backend/internal/services"
)

type Config struct {
	Port string
	Mode services.Mode

	PrimaryModel   string
	SecondaryModel string
	Temperature    float64
	MaxTokens      int
	TopP           float64

	MaxMessageChars int
	MaxHistoryTurns int
	MaxTurnChars    int

	RateLimitWindow time.Duration
	RateLimitMax    int

	ProviderConfigured bool
}

func LoadConfig() Config {
	mode := services.Mode(strings.ToLower(envutil.String("ENGINE_MODE", string(services.ModeRemote))))
	if mode != services.ModeOffline && mode != services.ModeRemote {
		mode = services.ModeRemote
	}

	providerConfigured := strings.TrimSpace(os.Getenv("GROQ_API_KEY")) != ""
	// Without a provider key the remote path cannot serve; fall back to
	// the offline engine instead of refusing to boot.
	if mode == services.ModeRemote && !providerConfigured {
		mode = services.ModeOffline
	}

	return Config{
		Port: envutil.String("PORT", "3001"),
		Mode: mode,

		PrimaryModel:   envutil.String("GROQ_MODEL", "llama-3.3-70b-versatile"),
		SecondaryModel: envutil.String("GROQ_FALLBACK_MODEL", "llama-3.1-8b-instant"),
		Temperature:    envutil.Float("GROQ_TEMPERATURE", 0.7),
		MaxTokens:      envutil.Int("GROQ_MAX_TOKENS", 800),
		TopP:           envutil.Float("GROQ_TOP_P", 0.9),

		MaxMessageChars: envutil.Int("CHAT_MAX_MESSAGE_CHARS", 2000),
		MaxHistoryTurns: envutil.Int("CHAT_MAX_HISTORY_TURNS", 10),
		MaxTurnChars:    envutil.Int("CHAT_MAX_TURN_CHARS", 1000),

		RateLimitWindow: envutil.DurationSeconds("RATE_LIMIT_WINDOW_SECONDS", time.Minute),
		RateLimitMax:    envutil.Int("RATE_LIMIT_MAX_REQUESTS", 20),

		ProviderConfigured: providerConfigured,
	}
}
