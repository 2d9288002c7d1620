package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proworker-backend/internal/config"
	"github.com/ignatzorin/proworker-backend/internal/http/handlers"
	"github.com/ignatzorin/proworker-backend/internal/http/middleware"
)

func SetupRouter(
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	contextHandler *handlers.ContextHandler,
	chatHandler *handlers.ChatHandler,
	wsHandler *handlers.WSHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	api.GET("/workers/:id/context", contextHandler.GetWorkerContext)
	// Per-IP лимит поверх суточной квоты провайдера
	api.POST("/chat", middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod), chatHandler.Chat)
	api.GET("/ws", wsHandler.Handle)

	return r
}
