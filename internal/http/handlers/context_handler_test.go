package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/proworker-backend/internal/http/middleware"
	"github.com/ignatzorin/proworker-backend/internal/models"
	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
)

type stubContextProvider struct {
	wc  *models.WorkerContext
	err error
}

func (s *stubContextProvider) BuildContext(ctx context.Context, workerID int64) (*models.WorkerContext, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.wc, nil
}

func newContextRouter(provider ContextProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	handler := NewContextHandler(provider)
	r.GET("/api/workers/:id/context", handler.GetWorkerContext)
	return r
}

func TestContextHandler_InvalidID(t *testing.T) {
	r := newContextRouter(&stubContextProvider{})

	for _, id := range []string{"abc", "-5", "0"} {
		req, _ := http.NewRequest("GET", "/api/workers/"+id+"/context", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "id=%q", id)
	}
}

func TestContextHandler_NotFound(t *testing.T) {
	r := newContextRouter(&stubContextProvider{err: apperror.ErrWorkerNotFound})

	req, _ := http.NewRequest("GET", "/api/workers/42/context", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContextHandler_OK(t *testing.T) {
	provider := &stubContextProvider{wc: &models.WorkerContext{
		Profile: models.WorkerProfile{ID: 42, Name: "Иван", Profession: "electrician"},
	}}
	r := newContextRouter(provider)

	req, _ := http.NewRequest("GET", "/api/workers/42/context", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	profile, ok := body["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Иван", profile["name"])
}

func TestContextHandler_InternalErrorMasked(t *testing.T) {
	r := newContextRouter(&stubContextProvider{err: assert.AnError})

	req, _ := http.NewRequest("GET", "/api/workers/42/context", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
