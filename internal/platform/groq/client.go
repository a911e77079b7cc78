package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/campuswell/campuswell-backend/internal/platform/envutil"
	"github.com/campuswell/campuswell-backend/internal/platform/logger"
)

// Message is one role-tagged turn sent to the chat-completions API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the provider payload. Groq speaks the OpenAI
// chat-completions wire format.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
}

type ChatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ChatClient is the provider surface the rest of the backend consumes.
type ChatClient interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (ChatClient, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GROQ_API_KEY")
	}

	baseURL := envutil.String("GROQ_BASE_URL", "https://api.groq.com/openai")
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := envutil.DurationSeconds("GROQ_TIMEOUT_SECONDS", 60*time.Second)

	return &client{
		log:        log.With("service", "GroqClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// HTTPError is a non-2xx provider reply. Code is the provider's
// machine-readable error code when the body carried one.
type HTTPError struct {
	StatusCode int
	Code       string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("groq http %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("groq http %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// ErrorCode returns the provider error code from err, if any.
func ErrorCode(err error) string {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return ""
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *client) ChatCompletion(ctx context.Context, reqBody ChatRequest) (ChatResponse, error) {
	var out ChatResponse
	if strings.TrimSpace(reqBody.Model) == "" {
		return out, fmt.Errorf("model required")
	}
	if len(reqBody.Messages) == 0 {
		return out, fmt.Errorf("messages required")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return out, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return out, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			httpErr.Code = strings.TrimSpace(eb.Error.Code)
			if httpErr.Code == "" {
				httpErr.Code = strings.TrimSpace(eb.Error.Type)
			}
		}
		c.log.Warn("Groq request failed",
			"model", reqBody.Model,
			"status", resp.StatusCode,
			"code", httpErr.Code,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return out, httpErr
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("groq decode error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return out, fmt.Errorf("groq response missing completion text")
	}

	c.log.Debug("Groq request complete",
		"model", reqBody.Model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
