package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// QuotaReporter отдаёт состояние суточной квоты AI запросов.
type QuotaReporter interface {
	QuotaUsage() (used, remaining int64, resetAt time.Time)
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	db    *sqlx.DB
	quota QuotaReporter
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(db *sqlx.DB, quota QuotaReporter) *HealthHandler {
	return &HealthHandler{db: db, quota: quota}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status            string            `json:"status"`
	Timestamp         time.Time         `json:"timestamp"`
	RequestsUsed      int64             `json:"requestsUsed"`
	RequestsRemaining int64             `json:"requestsRemaining"`
	Checks            map[string]string `json:"checks"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "healthy"
	}

	used, remaining, _ := h.quota.QuotaUsage()

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:            status,
		Timestamp:         time.Now(),
		RequestsUsed:      used,
		RequestsRemaining: remaining,
		Checks:            checks,
	})
}
