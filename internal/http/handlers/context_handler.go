package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proworker-backend/internal/models"
	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
)

// ContextProvider собирает снимок данных работника.
type ContextProvider interface {
	BuildContext(ctx context.Context, workerID int64) (*models.WorkerContext, error)
}

// ContextHandler отдаёт собранный контекст работника.
type ContextHandler struct {
	contexts ContextProvider
}

func NewContextHandler(contexts ContextProvider) *ContextHandler {
	return &ContextHandler{contexts: contexts}
}

// GetWorkerContext обрабатывает GET /api/workers/:id/context.
func (h *ContextHandler) GetWorkerContext(c *gin.Context) {
	workerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || workerID <= 0 {
		c.Error(apperror.New(apperror.ErrCodeValidation, "некорректный идентификатор работника"))
		return
	}

	wc, err := h.contexts.BuildContext(c.Request.Context(), workerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, wc)
}
