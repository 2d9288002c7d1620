package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByWorker возвращает заказы работника вместе с именем и полом клиента,
// от свежих к старым.
func (r *OrderRepository) ListByWorker(ctx context.Context, workerID int64) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, `
		SELECT o.id, o.workerid, o.clientid, o.order_status, o.date, o.time,
		       o.reschedule_comment, c.name AS client_name, c.gender AS client_gender
		FROM workerorder o
		LEFT JOIN client c ON c.id = o.clientid
		WHERE o.workerid = $1
		ORDER BY o.date DESC, o.id DESC
	`, workerID)
	return orders, err
}

// ListAll возвращает заказы всех работников для популяционных расчётов.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, `
		SELECT id, workerid, clientid, order_status, date, time, reschedule_comment
		FROM workerorder
	`)
	return orders, err
}
