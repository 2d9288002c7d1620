package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
	"github.com/ignatzorin/proworker-backend/internal/service"
)

// ChatHandler обрабатывает вопросы к AI ассистенту.
type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// ChatRequest — тело POST /api/chat.
type ChatRequest struct {
	WorkerID int64  `json:"worker_id" binding:"required,gt=0"`
	Question string `json:"question" binding:"required"`
}

// Chat обрабатывает POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(apperror.ErrCodeValidation, "нужны поля worker_id и question"))
		return
	}

	answer, err := h.chat.Ask(c.Request.Context(), req.WorkerID, req.Question)
	if err != nil {
		if apperror.IsQuotaExceeded(err) {
			_, remaining, resetAt := h.chat.QuotaUsage()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":             "дневная квота запросов к AI исчерпана",
				"requestsRemaining": remaining,
				"resetTime":         resetAt,
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        answer.ID,
		"response":  answer.Response,
		"cached":    answer.Cached,
		"timestamp": answer.Timestamp,
	})
}
