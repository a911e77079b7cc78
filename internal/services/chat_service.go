package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/campuswell/campuswell-backend/internal/counsel/classify"
	"github.com/campuswell/campuswell-backend/internal/counsel/compose"
	"github.com/campuswell/campuswell-backend/internal/counsel/crisis"
	"github.com/campuswell/campuswell-backend/internal/counsel/remote"
	"github.com/campuswell/campuswell-backend/internal/platform/apierr"
	"github.com/campuswell/campuswell-backend/internal/platform/logger"
	"github.com/campuswell/campuswell-backend/internal/ratelimit"
)

// Mode selects the reply engine.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeRemote  Mode = "remote"
)

// ChatResult is the composed outcome of one request.
type ChatResult struct {
	Response  string
	IsCrisis  bool
	Category  classify.Category
	ModelUsed string
}

// ChatService runs the response pipeline: crisis detection, engine
// dispatch, and overlay composition.
type ChatService interface {
	Respond(ctx context.Context, clientID, message string, history []remote.Turn) (ChatResult, error)
	Mode() Mode
}

type chatService struct {
	mode       Mode
	detector   *crisis.Detector
	classifier *classify.Engine
	limiter    *ratelimit.Limiter
	engine     *remote.Engine
	log        *logger.Logger
}

func NewChatService(mode Mode, detector *crisis.Detector, classifier *classify.Engine, limiter *ratelimit.Limiter, engine *remote.Engine, log *logger.Logger) (ChatService, error) {
	if detector == nil || classifier == nil || log == nil {
		return nil, fmt.Errorf("detector, classifier and logger required")
	}
	if mode == ModeRemote && (engine == nil || limiter == nil) {
		return nil, fmt.Errorf("remote mode requires engine and limiter")
	}
	return &chatService{
		mode:       mode,
		detector:   detector,
		classifier: classifier,
		limiter:    limiter,
		engine:     engine,
		log:        log.With("service", "ChatService"),
	}, nil
}

func (s *chatService) Mode() Mode { return s.mode }

// generationFailedNotice is the base text composed with the crisis
// overlay when the remote engine fails on a crisis message: safety
// resources are never dropped because generation failed.
const generationFailedNotice = "I'm having trouble generating a full reply right now, but please read the resources below."

// Respond runs the pipeline. Crisis detection always runs and its
// result only decides overlay composition, never category selection.
// On a remote-engine failure with a crisis message, the returned error
// is accompanied by a non-empty ChatResult carrying the overlay.
func (s *chatService) Respond(ctx context.Context, clientID, message string, history []remote.Turn) (ChatResult, error) {
	isCrisis := s.detector.Detect(message)

	if s.mode == ModeOffline {
		category, reply := s.classifier.Classify(message)
		return ChatResult{
			Response: compose.Compose(reply, isCrisis),
			IsCrisis: isCrisis,
			Category: category,
		}, nil
	}

	if !s.limiter.Allow(clientID) {
		s.log.Warn("Rate limit exceeded", "client_id", clientID)
		return s.failure(isCrisis, apierr.New(http.StatusTooManyRequests, "rate_limited",
			errors.New("too many requests, please wait a moment before sending another message")))
	}

	reply, model, err := s.engine.Complete(ctx, message, history)
	if err != nil {
		s.log.Error("Remote completion failed", "error", err, "crisis", isCrisis)
		return s.failure(isCrisis, translateProviderError(err))
	}

	return ChatResult{
		Response:  compose.Compose(reply, isCrisis),
		IsCrisis:  isCrisis,
		ModelUsed: model,
	}, nil
}

// failure pairs a typed error with the crisis overlay when one is
// owed. Callers surface the overlay inside the error payload.
func (s *chatService) failure(isCrisis bool, aerr *apierr.Error) (ChatResult, error) {
	res := ChatResult{IsCrisis: isCrisis}
	if isCrisis {
		res.Response = compose.Compose(generationFailedNotice, true)
	}
	return res, aerr
}

// translateProviderError maps the remote engine's sentinel errors onto
// the outbound error taxonomy. Auth failures stay generic so no
// credential detail leaks to the caller.
func translateProviderError(err error) *apierr.Error {
	switch {
	case errors.Is(err, remote.ErrAuth):
		return apierr.New(http.StatusInternalServerError, "service_error",
			errors.New("unable to process your request at this time, please try again"))
	case errors.Is(err, remote.ErrOverloaded):
		return apierr.New(http.StatusTooManyRequests, "provider_busy",
			errors.New("the service is experiencing high demand, please try again in a few moments"))
	case errors.Is(err, remote.ErrConversationTooLong):
		return apierr.New(http.StatusBadRequest, "conversation_too_long",
			errors.New("conversation is too long, please start a new conversation"))
	case errors.Is(err, remote.ErrUnavailable):
		return apierr.New(http.StatusServiceUnavailable, "provider_unavailable",
			errors.New("the AI service is temporarily unavailable, please try again shortly"))
	default:
		return apierr.New(http.StatusInternalServerError, "service_error",
			errors.New("unable to process your request at this time, please try again"))
	}
}

// ValidateMessage enforces the inbound message contract before any
// engine runs: required after trimming, and bounded in length.
func ValidateMessage(message string, maxChars int) *apierr.Error {
	if strings.TrimSpace(message) == "" {
		return apierr.New(http.StatusBadRequest, "message_required", errors.New("valid message is required"))
	}
	if maxChars > 0 && len(message) > maxChars {
		return apierr.New(http.StatusBadRequest, "message_too_long",
			fmt.Errorf("message is too long, please keep it under %d characters", maxChars))
	}
	return nil
}
