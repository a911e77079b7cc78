package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campuswell/campuswell-backend/internal/pkg/httpx"
	"github.com/campuswell/campuswell-backend/internal/platform/groq"
	"github.com/campuswell/campuswell-backend/internal/platform/logger"
)

// Closed set of provider failures surfaced past the orchestrator
// boundary. Raw provider errors never leak to callers.
var (
	ErrAuth                = errors.New("provider authentication failed")
	ErrOverloaded          = errors.New("provider overloaded")
	ErrUnavailable         = errors.New("provider unavailable")
	ErrConversationTooLong = errors.New("conversation too long")
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one caller-supplied prior exchange. History is untrusted
// input and is bounded before use.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BoundHistory keeps the most recent maxTurns turns, truncates each
// turn's content to maxChars, and normalizes roles so anything that is
// not the assistant speaks as the user.
func BoundHistory(turns []Turn, maxTurns, maxChars int) []Turn {
	if maxTurns <= 0 || len(turns) == 0 {
		return nil
	}
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	out := make([]Turn, 0, len(turns))
	for _, t := range turns {
		role := RoleUser
		if t.Role == RoleAssistant {
			role = RoleAssistant
		}
		content := t.Content
		if maxChars > 0 && len(content) > maxChars {
			content = content[:maxChars]
		}
		out = append(out, Turn{Role: role, Content: content})
	}
	return out
}

// Config bounds the prompt and selects the model pair.
type Config struct {
	PrimaryModel   string
	SecondaryModel string
	MaxTurns       int
	MaxTurnChars   int
	Temperature    float64
	MaxTokens      int
	TopP           float64
}

// Engine builds a bounded prompt, calls the remote provider, and falls
// back to the secondary model exactly once when the provider reports
// overload. It is the only component in the pipeline that performs
// network I/O.
type Engine struct {
	client groq.ChatClient
	cfg    Config
	log    *logger.Logger
}

func NewEngine(client groq.ChatClient, cfg Config, log *logger.Logger) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("chat client required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.PrimaryModel) == "" {
		return nil, fmt.Errorf("primary model required")
	}
	return &Engine{client: client, cfg: cfg, log: log.With("service", "RemoteEngine")}, nil
}

// Complete generates a reply for message given the caller-supplied
// history. It reports which model ultimately served the request.
// Failures map to the package's sentinel errors.
func (e *Engine) Complete(ctx context.Context, message string, history []Turn) (string, string, error) {
	bounded := BoundHistory(history, e.cfg.MaxTurns, e.cfg.MaxTurnChars)

	messages := make([]groq.Message, 0, len(bounded)+2)
	messages = append(messages, groq.Message{Role: "system", Content: SystemInstruction})
	for _, t := range bounded {
		messages = append(messages, groq.Message{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, groq.Message{Role: RoleUser, Content: message})

	reply, err := e.complete(ctx, e.cfg.PrimaryModel, messages)
	if err == nil {
		return reply, e.cfg.PrimaryModel, nil
	}

	// Only an overload signal earns the single secondary-model retry;
	// auth and other failures propagate immediately.
	if !errors.Is(err, ErrOverloaded) || strings.TrimSpace(e.cfg.SecondaryModel) == "" {
		return "", "", err
	}

	e.log.Warn("Primary model overloaded, falling back",
		"primary_model", e.cfg.PrimaryModel,
		"secondary_model", e.cfg.SecondaryModel,
	)

	reply, err = e.complete(ctx, e.cfg.SecondaryModel, messages)
	if err != nil {
		return "", "", err
	}
	return reply, e.cfg.SecondaryModel, nil
}

func (e *Engine) complete(ctx context.Context, model string, messages []groq.Message) (string, error) {
	resp, err := e.client.ChatCompletion(ctx, groq.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
		TopP:        e.cfg.TopP,
	})
	if err != nil {
		return "", translate(err)
	}
	return resp.Choices[0].Message.Content, nil
}

// translate maps a raw provider error onto the closed sentinel set.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch groq.ErrorCode(err) {
	case "rate_limit_exceeded":
		return fmt.Errorf("%w: %s", ErrOverloaded, err)
	case "context_length_exceeded":
		return fmt.Errorf("%w: %s", ErrConversationTooLong, err)
	case "invalid_api_key":
		return fmt.Errorf("%w: %s", ErrAuth, err)
	}

	code := httpx.StatusCode(err)
	switch {
	case httpx.IsAuthStatus(code):
		return fmt.Errorf("%w: %s", ErrAuth, err)
	case httpx.IsOverloadedStatus(code):
		return fmt.Errorf("%w: %s", ErrOverloaded, err)
	case httpx.IsUnavailableStatus(code), httpx.IsTimeoutError(err):
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, err)
}
