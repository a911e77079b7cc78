package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/campuswell/campuswell-backend/internal/counsel/classify"
	"github.com/campuswell/campuswell-backend/internal/counsel/compose"
	"github.com/campuswell/campuswell-backend/internal/counsel/crisis"
	"github.com/campuswell/campuswell-backend/internal/counsel/remote"
	"github.com/campuswell/campuswell-backend/internal/platform/apierr"
	"github.com/campuswell/campuswell-backend/internal/platform/groq"
	"github.com/campuswell/campuswell-backend/internal/platform/logger"
	"github.com/campuswell/campuswell-backend/internal/ratelimit"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// stubChat answers every completion with a fixed reply or error.
type stubChat struct {
	reply string
	err   error
	calls int
}

func (s *stubChat) ChatCompletion(_ context.Context, req groq.ChatRequest) (groq.ChatResponse, error) {
	s.calls++
	if s.err != nil {
		return groq.ChatResponse{}, s.err
	}
	var resp groq.ChatResponse
	resp.Model = req.Model
	resp.Choices = append(resp.Choices, struct {
		Message groq.Message `json:"message"`
	}{Message: groq.Message{Role: remote.RoleAssistant, Content: s.reply}})
	return resp, nil
}

func newOfflineService(t *testing.T) ChatService {
	t.Helper()
	svc, err := NewChatService(ModeOffline, crisis.NewDetector(), classify.NewEngine(), nil, nil, testLogger())
	if err != nil {
		t.Fatalf("NewChatService: %v", err)
	}
	return svc
}

func newRemoteService(t *testing.T, stub *stubChat, limiter *ratelimit.Limiter) ChatService {
	t.Helper()
	engine, err := remote.NewEngine(stub, remote.Config{PrimaryModel: "primary-model"}, testLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if limiter == nil {
		limiter = ratelimit.New(time.Minute, 100)
	}
	svc, err := NewChatService(ModeRemote, crisis.NewDetector(), classify.NewEngine(), limiter, engine, testLogger())
	if err != nil {
		t.Fatalf("NewChatService: %v", err)
	}
	return svc
}

func TestNewChatServiceValidation(t *testing.T) {
	t.Parallel()
	if _, err := NewChatService(ModeOffline, nil, classify.NewEngine(), nil, nil, testLogger()); err == nil {
		t.Fatal("expected error without detector")
	}
	if _, err := NewChatService(ModeRemote, crisis.NewDetector(), classify.NewEngine(), nil, nil, testLogger()); err == nil {
		t.Fatal("remote mode without engine and limiter should fail")
	}
}

func TestRespondOffline(t *testing.T) {
	t.Parallel()
	svc := newOfflineService(t)

	res, err := svc.Respond(context.Background(), "ip-1", "engineering is so hard", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.Category != "engineering-difficulty" {
		t.Fatalf("category = %q", res.Category)
	}
	if res.IsCrisis {
		t.Fatal("unexpected crisis flag")
	}
	if res.ModelUsed != "" {
		t.Fatalf("offline reply reports model %q", res.ModelUsed)
	}
	if strings.Contains(res.Response, compose.Overlay) {
		t.Fatal("overlay appended to non-crisis reply")
	}
}

func TestRespondOfflineCrisisOverlay(t *testing.T) {
	t.Parallel()
	svc := newOfflineService(t)

	res, err := svc.Respond(context.Background(), "ip-1", "engineering is hard and i want to die", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !res.IsCrisis {
		t.Fatal("crisis not flagged")
	}
	if res.Category != "engineering-difficulty" {
		t.Fatalf("crisis changed category selection: %q", res.Category)
	}
	if !strings.HasSuffix(res.Response, compose.Overlay) {
		t.Fatal("overlay missing")
	}
	if strings.HasPrefix(res.Response, compose.Overlay) {
		t.Fatal("overlay replaced the base reply")
	}
}

func TestRespondRemote(t *testing.T) {
	t.Parallel()
	stub := &stubChat{reply: "you're doing better than you think"}
	svc := newRemoteService(t, stub, nil)

	res, err := svc.Respond(context.Background(), "ip-1", "stressed about finals", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.Response != "you're doing better than you think" {
		t.Fatalf("response = %q", res.Response)
	}
	if res.ModelUsed != "primary-model" {
		t.Fatalf("model = %q", res.ModelUsed)
	}
}

func TestRespondRemoteCrisisOverlay(t *testing.T) {
	t.Parallel()
	stub := &stubChat{reply: "please stay with me here"}
	svc := newRemoteService(t, stub, nil)

	res, err := svc.Respond(context.Background(), "ip-1", "i feel like i want to die", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !res.IsCrisis || !strings.HasSuffix(res.Response, compose.Overlay) {
		t.Fatalf("crisis overlay missing: %+v", res.IsCrisis)
	}
	if !strings.HasPrefix(res.Response, "please stay with me here") {
		t.Fatal("model reply dropped from crisis response")
	}
}

func TestRespondRateLimited(t *testing.T) {
	t.Parallel()
	stub := &stubChat{reply: "ok"}
	svc := newRemoteService(t, stub, ratelimit.New(time.Minute, 1))

	if _, err := svc.Respond(context.Background(), "ip-1", "hello", nil); err != nil {
		t.Fatalf("first request: %v", err)
	}
	_, err := svc.Respond(context.Background(), "ip-1", "hello again", nil)
	aerr, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("err = %T, want *apierr.Error", err)
	}
	if aerr.Status != http.StatusTooManyRequests || aerr.Code != "rate_limited" {
		t.Fatalf("status/code = %d/%s", aerr.Status, aerr.Code)
	}
	if stub.calls != 1 {
		t.Fatalf("provider called %d times, want 1", stub.calls)
	}

	// Other clients keep their own window.
	if _, err := svc.Respond(context.Background(), "ip-2", "hello", nil); err != nil {
		t.Fatalf("second client: %v", err)
	}
}

func TestRespondRateLimitedCrisisStillGetsOverlay(t *testing.T) {
	t.Parallel()
	svc := newRemoteService(t, &stubChat{reply: "ok"}, ratelimit.New(time.Minute, 0))

	res, err := svc.Respond(context.Background(), "ip-1", "i want to die", nil)
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	if !res.IsCrisis || !strings.Contains(res.Response, compose.Overlay) {
		t.Fatal("crisis overlay dropped on rate limit")
	}
}

func TestRespondProviderFailureMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		status     int
		code       string
		wantStatus int
		wantCode   string
	}{
		{"auth stays generic", 401, "invalid_api_key", http.StatusInternalServerError, "service_error"},
		{"overload", 429, "", http.StatusTooManyRequests, "provider_busy"},
		{"too long", 400, "context_length_exceeded", http.StatusBadRequest, "conversation_too_long"},
		{"unavailable", 503, "", http.StatusServiceUnavailable, "provider_unavailable"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stub := &stubChat{err: &groq.HTTPError{StatusCode: tc.status, Code: tc.code}}
			svc := newRemoteService(t, stub, nil)

			res, err := svc.Respond(context.Background(), "ip-1", "hello", nil)
			aerr, ok := err.(*apierr.Error)
			if !ok {
				t.Fatalf("err = %T, want *apierr.Error", err)
			}
			if aerr.Status != tc.wantStatus || aerr.Code != tc.wantCode {
				t.Fatalf("status/code = %d/%s, want %d/%s", aerr.Status, aerr.Code, tc.wantStatus, tc.wantCode)
			}
			if tc.wantCode == "service_error" && strings.Contains(aerr.Error(), "api_key") {
				t.Fatal("credential detail leaked through error")
			}
			if res.Response != "" {
				t.Fatalf("non-crisis failure carried response %q", res.Response)
			}
		})
	}
}

func TestRespondProviderFailureCrisisOverlay(t *testing.T) {
	t.Parallel()
	stub := &stubChat{err: &groq.HTTPError{StatusCode: 503}}
	svc := newRemoteService(t, stub, nil)

	res, err := svc.Respond(context.Background(), "ip-1", "i want to end my life", nil)
	if err == nil {
		t.Fatal("expected provider error")
	}
	if !res.IsCrisis {
		t.Fatal("crisis not flagged")
	}
	if !strings.Contains(res.Response, compose.Overlay) {
		t.Fatal("overlay missing from failure response")
	}
}

func TestValidateMessage(t *testing.T) {
	t.Parallel()
	if err := ValidateMessage("hello", 2000); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}
	if err := ValidateMessage("", 2000); err == nil || err.Code != "message_required" {
		t.Fatalf("empty message: %v", err)
	}
	if err := ValidateMessage("   \n\t ", 2000); err == nil || err.Code != "message_required" {
		t.Fatalf("whitespace message: %v", err)
	}
	long := strings.Repeat("a", 2001)
	if err := ValidateMessage(long, 2000); err == nil || err.Code != "message_too_long" {
		t.Fatalf("oversized message: %v", err)
	}
	if err := ValidateMessage(strings.Repeat("a", 2000), 2000); err != nil {
		t.Fatalf("boundary message rejected: %v", err)
	}
}
