package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proworker-backend/internal/ai"
	"github.com/ignatzorin/proworker-backend/internal/goroutine"
	"github.com/ignatzorin/proworker-backend/internal/logger"
	"github.com/ignatzorin/proworker-backend/internal/models"
	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
)

// ContextBuilder собирает снимок данных работника.
type ContextBuilder interface {
	BuildContext(ctx context.Context, workerID int64) (*models.WorkerContext, error)
}

// AssistantClient выполняет chat completion у AI провайдера.
type AssistantClient interface {
	ChatCompletion(ctx context.Context, messages []map[string]string, temperature float64) (string, error)
}

// ChatAnswer — результат обработки вопроса.
type ChatAnswer struct {
	ID        uuid.UUID `json:"id"`
	Response  string    `json:"response"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
}

type chatJob struct {
	ctx      context.Context
	workerID int64
	question string
	cacheKey string
	reply    chan chatResult
}

type chatResult struct {
	answer ChatAnswer
	err    error
}

// ChatService обрабатывает вопросы к ассистенту. Запросы к провайдеру идут
// строго по одному через FIFO очередь с паузой между соседними запросами;
// ответы из кэша отдаются сразу и квоту не расходуют.
type ChatService struct {
	contexts  ContextBuilder
	assistant AssistantClient
	cache     *CacheService
	quota     *QuotaService
	queue     chan chatJob
	spacing   time.Duration
	now       func() time.Time
}

// Пауза между соседними запросами к провайдеру.
const defaultSpacing = time.Second

func NewChatService(
	contexts ContextBuilder,
	assistant AssistantClient,
	cache *CacheService,
	quota *QuotaService,
	queueSize int64,
	now func() time.Time,
) *ChatService {
	if now == nil {
		now = time.Now
	}
	if queueSize <= 0 {
		queueSize = 32
	}
	return &ChatService{
		contexts:  contexts,
		assistant: assistant,
		cache:     cache,
		quota:     quota,
		queue:     make(chan chatJob, queueSize),
		spacing:   defaultSpacing,
		now:       now,
	}
}

// Start запускает обработчик очереди. Останавливается по отмене ctx.
func (s *ChatService) Start(ctx context.Context) {
	goroutine.SafeGoWithContext(ctx, s.processQueue)
}

// Ask отвечает на вопрос работника: сначала кэш, затем квота и очередь.
func (s *ChatService) Ask(ctx context.Context, workerID int64, question string) (*ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "вопрос не может быть пустым")
	}

	cacheKey := ChatCacheKey(question, workerID)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return &ChatAnswer{
			ID:        uuid.New(),
			Response:  cached,
			Cached:    true,
			Timestamp: s.now(),
		}, nil
	}

	if !s.quota.Allow() {
		return nil, apperror.ErrQuotaExceeded
	}

	job := chatJob{
		ctx:      ctx,
		workerID: workerID,
		question: question,
		cacheKey: cacheKey,
		reply:    make(chan chatResult, 1),
	}

	select {
	case s.queue <- job:
	default:
		return nil, apperror.ErrQueueOverflow
	}

	select {
	case result := <-job.reply:
		if result.err != nil {
			return nil, result.err
		}
		return &result.answer, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// QuotaUsage возвращает состояние суточной квоты для health endpoint.
func (s *ChatService) QuotaUsage() (used, remaining int64, resetAt time.Time) {
	return s.quota.Usage()
}

// processQueue выполняет задания по одному с паузой между ними.
func (s *ChatService) processQueue(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.queue:
			s.handle(job)

			select {
			case <-ctx.Done():
				return
			case <-time.After(s.spacing):
			}
		}
	}
}

func (s *ChatService) handle(job chatJob) {
	// Пока задание стояло в очереди, идентичный вопрос мог уже получить
	// ответ — перепроверяем кэш, прежде чем тратить квоту.
	if cached, ok := s.cache.Get(job.cacheKey); ok {
		job.reply <- chatResult{answer: ChatAnswer{
			ID:        uuid.New(),
			Response:  cached,
			Cached:    true,
			Timestamp: s.now(),
		}}
		return
	}

	if !s.quota.Allow() {
		job.reply <- chatResult{err: apperror.ErrQuotaExceeded}
		return
	}

	wc, err := s.contexts.BuildContext(job.ctx, job.workerID)
	if err != nil {
		job.reply <- chatResult{err: err}
		return
	}

	messages, err := ai.BuildMessages(job.question, wc)
	if err != nil {
		job.reply <- chatResult{err: err}
		return
	}

	intent := ai.DetectQueryIntent(job.question)
	answer, err := s.assistant.ChatCompletion(job.ctx, messages, intent.Temperature())
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", job.workerID).Error("ошибка AI провайдера")
		job.reply <- chatResult{err: err}
		return
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = ai.FallbackAnswer(intent)
	}

	s.quota.Consume()
	s.cache.Set(job.cacheKey, answer)

	job.reply <- chatResult{answer: ChatAnswer{
		ID:        uuid.New(),
		Response:  answer,
		Cached:    false,
		Timestamp: s.now(),
	}}
}
