package analytics

import (
	"github.com/ignatzorin/proworker-backend/internal/models"
)

// SummarizeOrders считает заказы по статусам. Accepted входит только
// в Total, поэтому сумма четырёх счётчиков может быть меньше Total.
func SummarizeOrders(orders []models.Order) models.OrderSummary {
	var summary models.OrderSummary
	for _, o := range orders {
		summary.Total++
		switch o.Status {
		case models.OrderStatusCompleted:
			summary.Completed++
		case models.OrderStatusCancelled:
			summary.Cancelled++
		case models.OrderStatusPending:
			summary.Pending++
		case models.OrderStatusRescheduled:
			summary.Rescheduled++
		}
	}
	return summary
}
