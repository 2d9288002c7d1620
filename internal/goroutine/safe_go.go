package goroutine

import (
	"context"
	"log"
	"runtime/debug"

	"github.com/ignatzorin/proworker-backend/internal/logger"
)

// SafeGo запускает fn в горутине и перехватывает panic, чтобы сбой фоновой
// задачи не ронял весь процесс.
func SafeGo(fn func()) {
	go func() {
		defer logPanic()
		fn()
	}()
}

// SafeGoWithContext — как SafeGo, но передаёт fn контекст для остановки.
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer logPanic()
		fn(ctx)
	}()
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	if logger.Log != nil {
		logger.Log.WithField("panic", r).Errorf("паника в горутине:\n%s", debug.Stack())
		return
	}
	log.Printf("паника в горутине: %v\n%s", r, debug.Stack())
}
