package models

import (
	"time"
)

// Коды статусов заказа (фиксированная внешняя схема).
const (
	OrderStatusPending     = 1
	OrderStatusAccepted    = 2
	OrderStatusCompleted   = 3
	OrderStatusCancelled   = 4
	OrderStatusRescheduled = 5
)

var orderStatusNames = map[int]string{
	OrderStatusPending:     "Pending",
	OrderStatusAccepted:    "Accepted",
	OrderStatusCompleted:   "Completed",
	OrderStatusCancelled:   "Cancelled",
	OrderStatusRescheduled: "Rescheduled",
}

// OrderStatusName возвращает читаемое имя статуса; для неизвестного кода
// возвращает пустую строку.
func OrderStatusName(status int) string {
	return orderStatusNames[status]
}

// Order описывает заказ работника. StatusName, ClientName, ClientGender и
// CancellationReason обогащаются при сборке контекста, в базе их нет.
type Order struct {
	ID                int64     `db:"id" json:"id"`
	WorkerID          int64     `db:"workerid" json:"workerid"`
	ClientID          int64     `db:"clientid" json:"clientid"`
	Status            int       `db:"order_status" json:"order_status"`
	Date              time.Time `db:"date" json:"date"`
	Time              string    `db:"time" json:"time"`
	RescheduleComment *string   `db:"reschedule_comment" json:"reschedule_comment"`

	StatusName         string  `db:"-" json:"status_name,omitempty"`
	ClientName         string  `db:"client_name" json:"client_name,omitempty"`
	ClientGender       *string `db:"client_gender" json:"client_gender,omitempty"`
	CancellationReason string  `db:"-" json:"cancellation_reason,omitempty"`
}

// OrderSummary — сводка заказов по статусам. Статус Accepted учитывается
// только в Total.
type OrderSummary struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Cancelled   int `json:"cancelled"`
	Pending     int `json:"pending"`
	Rescheduled int `json:"rescheduled"`
}
