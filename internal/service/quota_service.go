package service

import (
	"sync"
	"time"
)

// Окно действия суточной квоты.
const quotaWindow = 24 * time.Hour

// QuotaService ограничивает число обращений к AI провайдеру: счётчик
// сбрасывается через 24 часа после первого запроса в окне.
type QuotaService struct {
	mu      sync.Mutex
	limit   int64
	used    int64
	resetAt time.Time
	now     func() time.Time
}

// NewQuotaService создаёт квоту с указанным суточным лимитом.
func NewQuotaService(limit int64, now func() time.Time) *QuotaService {
	if now == nil {
		now = time.Now
	}
	qs := &QuotaService{
		limit: limit,
		now:   now,
	}
	qs.resetAt = qs.now().Add(quotaWindow)
	return qs
}

// Allow сообщает, разрешён ли ещё один запрос, не расходуя квоту.
func (qs *QuotaService) Allow() bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.rollover()
	return qs.used < qs.limit
}

// Consume расходует одну единицу квоты. Вызывается после успешного
// обращения к провайдеру; ответы из кэша квоту не тратят.
func (qs *QuotaService) Consume() {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.rollover()
	qs.used++
}

// Usage возвращает израсходованное, оставшееся и время сброса окна.
func (qs *QuotaService) Usage() (used, remaining int64, resetAt time.Time) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.rollover()
	remaining = qs.limit - qs.used
	if remaining < 0 {
		remaining = 0
	}
	return qs.used, remaining, qs.resetAt
}

// rollover сбрасывает счётчик, если окно истекло. Вызывается под mu.
func (qs *QuotaService) rollover() {
	now := qs.now()
	if now.After(qs.resetAt) {
		qs.used = 0
		qs.resetAt = now.Add(quotaWindow)
	}
}
