package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuswell/campuswell-backend/internal/counsel/remote"
	"github.com/campuswell/campuswell-backend/internal/http/response"
	"github.com/campuswell/campuswell-backend/internal/platform/apierr"
	"github.com/campuswell/campuswell-backend/internal/services"
)

type ChatHandler struct {
	chat            services.ChatService
	maxMessageChars int
}

func NewChatHandler(chat services.ChatService, maxMessageChars int) *ChatHandler {
	return &ChatHandler{chat: chat, maxMessageChars: maxMessageChars}
}

type chatReq struct {
	Message string        `json:"message"`
	History []remote.Turn `json:"history"`
}

type chatResp struct {
	Response  string `json:"response"`
	IsCrisis  bool   `json:"isCrisis"`
	ModelUsed string `json:"modelUsed,omitempty"`
	Timestamp string `json:"timestamp"`
}

// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if aerr := services.ValidateMessage(req.Message, h.maxMessageChars); aerr != nil {
		response.RespondError(c, aerr.Status, aerr.Code, aerr)
		return
	}

	result, err := h.chat.Respond(c.Request.Context(), c.ClientIP(), req.Message, req.History)
	if err != nil {
		status, code := http.StatusInternalServerError, "service_error"
		var aerr *apierr.Error
		if errors.As(err, &aerr) {
			status, code = aerr.Status, aerr.Code
		}
		// Safety text rides along even when generation failed.
		if result.IsCrisis && result.Response != "" {
			response.RespondErrorWithCrisis(c, status, code, err, result.Response)
			return
		}
		response.RespondError(c, status, code, err)
		return
	}

	response.RespondOK(c, chatResp{
		Response:  result.Response,
		IsCrisis:  result.IsCrisis,
		ModelUsed: result.ModelUsed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
