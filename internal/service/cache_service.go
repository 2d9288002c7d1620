package service

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// CacheService — in-memory кэш ответов ассистента с TTL.
// Часы инжектируются, чтобы истечение записей было проверяемым в тестах.
type CacheService struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

type cacheEntry struct {
	answer    string
	expiresAt time.Time
}

// NewCacheService создаёт кэш с указанным TTL.
func NewCacheService(ttl time.Duration, now func() time.Time) *CacheService {
	if now == nil {
		now = time.Now
	}
	return &CacheService{
		cache: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   now,
	}
}

// ChatCacheKey строит ключ кэша: вопрос приводится к нижнему регистру,
// поэтому "What's my rating?" и "what's my rating?" делят одну запись.
func ChatCacheKey(question string, workerID int64) string {
	return strings.ToLower(strings.TrimSpace(question)) + "_" + strconv.FormatInt(workerID, 10)
}

// Get возвращает закэшированный ответ, если запись ещё не истекла.
func (cs *CacheService) Get(key string) (string, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists {
		return "", false
	}
	if cs.now().After(entry.expiresAt) {
		// Не удаляем под RLock, очисткой займётся Cleanup
		return "", false
	}
	return entry.answer, true
}

// Set сохраняет ответ с TTL кэша.
func (cs *CacheService) Set(key, answer string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = &cacheEntry{
		answer:    answer,
		expiresAt: cs.now().Add(cs.ttl),
	}
}

// Cleanup удаляет истёкшие записи. Вызывается периодически снаружи.
func (cs *CacheService) Cleanup() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	now := cs.now()
	for key, entry := range cs.cache {
		if now.After(entry.expiresAt) {
			delete(cs.cache, key)
		}
	}
}

// Len возвращает число записей, включая истёкшие, но ещё не удалённые.
func (cs *CacheService) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.cache)
}
