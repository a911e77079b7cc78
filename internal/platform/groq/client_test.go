package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/campuswell/campuswell-backend/internal/platform/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) ChatClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("GROQ_API_KEY", "gsk_test_key")
	t.Setenv("GROQ_BASE_URL", srv.URL)

	c, err := NewClient(testLogger())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	if _, err := NewClient(testLogger()); err == nil {
		t.Fatal("expected error without GROQ_API_KEY")
	}
}

func TestChatCompletionSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq ChatRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"test-model","choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	})

	resp, err := c.ChatCompletion(context.Background(), ChatRequest{
		Model:    "test-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if gotPath != "/v1/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer gsk_test_key" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotReq.Model != "test-model" || len(gotReq.Messages) != 1 {
		t.Fatalf("request body = %+v", gotReq)
	}
	if resp.Choices[0].Message.Content != "hello there" {
		t.Fatalf("content = %q", resp.Choices[0].Message.Content)
	}
}

func TestChatCompletionProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"requests","code":"rate_limit_exceeded"}}`))
	})

	_, err := c.ChatCompletion(context.Background(), ChatRequest{
		Model:    "test-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("err = %T, want *HTTPError", err)
	}
	if he.HTTPStatusCode() != http.StatusTooManyRequests {
		t.Fatalf("status = %d", he.HTTPStatusCode())
	}
	if got := ErrorCode(err); got != "rate_limit_exceeded" {
		t.Fatalf("code = %q", got)
	}
}

func TestChatCompletionErrorTypeFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_api_key"}}`))
	})

	_, err := c.ChatCompletion(context.Background(), ChatRequest{
		Model:    "test-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if got := ErrorCode(err); got != "invalid_api_key" {
		t.Fatalf("code = %q, want type fallback", got)
	}
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"test-model","choices":[]}`))
	})

	_, err := c.ChatCompletion(context.Background(), ChatRequest{
		Model:    "test-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "missing completion") {
		t.Fatalf("err = %v, want missing completion", err)
	}
}

func TestChatCompletionValidatesInput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	if _, err := c.ChatCompletion(context.Background(), ChatRequest{Messages: []Message{{Role: "user", Content: "hi"}}}); err == nil {
		t.Fatal("expected error for empty model")
	}
	if _, err := c.ChatCompletion(context.Background(), ChatRequest{Model: "test-model"}); err == nil {
		t.Fatal("expected error for empty messages")
	}
}
