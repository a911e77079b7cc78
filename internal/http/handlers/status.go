package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campuswell/campuswell-backend/internal/http/response"
	"github.com/campuswell/campuswell-backend/internal/services"
)

type StatusHandler struct {
	chat               services.ChatService
	providerConfigured bool
}

func NewStatusHandler(chat services.ChatService, providerConfigured bool) *StatusHandler {
	return &StatusHandler{chat: chat, providerConfigured: providerConfigured}
}

// GET /api/status
func (h *StatusHandler) Status(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"status": "operational",
		"engine": gin.H{
			"mode":               string(h.chat.Mode()),
			"providerConfigured": h.providerConfigured,
		},
		"features": gin.H{
			"crisisDetection":     true,
			"conversationHistory": h.chat.Mode() == services.ModeRemote,
			"rateLimit":           h.chat.Mode() == services.ModeRemote,
			"specializedSupport":  []string{"engineering", "cs", "medical", "highschool"},
		},
	})
}
