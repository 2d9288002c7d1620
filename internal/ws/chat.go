package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ignatzorin/proworker-backend/internal/goroutine"
	"github.com/ignatzorin/proworker-backend/internal/logger"
	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
	"github.com/ignatzorin/proworker-backend/internal/service"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	maxFrameSize = 64 * 1024
)

// Chatter отвечает на вопросы работника.
type Chatter interface {
	Ask(ctx context.Context, workerID int64, question string) (*service.ChatAnswer, error)
}

// Question — входящий кадр клиента.
type Question struct {
	WorkerID int64  `json:"worker_id"`
	Question string `json:"question"`
}

// Answer — исходящий кадр сервера.
type Answer struct {
	ID        string    `json:"id,omitempty"`
	Response  string    `json:"response,omitempty"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Session — одно WebSocket соединение чата. Вопросы внутри соединения
// обрабатываются последовательно, в порядке поступления. Gorilla допускает
// только одного пишущего на соединение, поэтому кадры данных сериализуются
// через writeMu, а ping уходит через WriteControl.
type Session struct {
	conn    *websocket.Conn
	chat    Chatter
	writeMu sync.Mutex
}

// NewSession создаёт сессию поверх установленного соединения.
func NewSession(conn *websocket.Conn, chat Chatter) *Session {
	return &Session{conn: conn, chat: chat}
}

// Run читает вопросы и пишет ответы до закрытия соединения или отмены ctx.
func (s *Session) Run(ctx context.Context) {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxFrameSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	goroutine.SafeGo(func() {
		s.pingLoop(ctx, done)
	})

	for {
		var q Question
		if err := s.conn.ReadJSON(&q); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Debug("ws: соединение закрыто")
			}
			return
		}

		answer, err := s.chat.Ask(ctx, q.WorkerID, q.Question)
		if err != nil {
			if writeErr := s.writeJSON(errorFrame(err)); writeErr != nil {
				return
			}
			continue
		}

		frame := Answer{
			ID:        answer.ID.String(),
			Response:  answer.Response,
			Cached:    answer.Cached,
			Timestamp: answer.Timestamp,
		}
		if err := s.writeJSON(frame); err != nil {
			return
		}
	}
}

func (s *Session) pingLoop(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			if err := s.ping(); err != nil {
				return
			}
		}
	}
}

// ping отправляет контрольный кадр. WriteControl можно вызывать
// параллельно с записью кадров данных.
func (s *Session) ping() error {
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (s *Session) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func errorFrame(err error) Answer {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return Answer{Error: appErr.Message}
	}
	return Answer{Error: "внутренняя ошибка сервера"}
}
