package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

// monthsWindow — размер скользящего окна помесячной истории.
const monthsWindow = 12

// BuildMonthlyHistory раскладывает заказы работника по календарным месяцам.
// Сначала засеваются нулевые корзины за последние 12 месяцев (включая
// текущий, отсчёт от now), затем каждый заказ попадает в свою корзину;
// если заказ старше окна, корзина создаётся по требованию — такие месяцы
// тоже попадают в историю. Результат отсортирован по убыванию (год, месяц),
// первый элемент — самая свежая корзина.
func BuildMonthlyHistory(orders []models.Order, now time.Time, chargesPerVisit float64) []models.MonthlyMetric {
	buckets := make(map[string]*models.MonthlyMetric, monthsWindow)

	for i := 0; i < monthsWindow; i++ {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		buckets[monthKey(d)] = newMonthBucket(d)
	}

	for _, o := range orders {
		key := monthKey(o.Date)
		entry, ok := buckets[key]
		if !ok {
			entry = newMonthBucket(o.Date)
			buckets[key] = entry
		}

		entry.TotalOrders++
		switch o.Status {
		case models.OrderStatusCompleted:
			entry.CompletedOrders++
			entry.EstimatedEarnings += chargesPerVisit
		case models.OrderStatusCancelled:
			entry.CancelledOrders++
		case models.OrderStatusRescheduled:
			entry.RescheduledOrders++
		}
	}

	history := make([]models.MonthlyMetric, 0, len(buckets))
	for _, b := range buckets {
		history = append(history, *b)
	}

	sort.Slice(history, func(i, j int) bool {
		if history[i].Year != history[j].Year {
			return history[i].Year > history[j].Year
		}
		return history[i].Month > history[j].Month
	})

	return history
}

// monthKey возвращает ключ корзины вида "2025-01".
func monthKey(d time.Time) string {
	return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
}

// newMonthBucket создаёт нулевую корзину для месяца даты d.
func newMonthBucket(d time.Time) *models.MonthlyMetric {
	return &models.MonthlyMetric{
		MonthName: fmt.Sprintf("%s %d", d.Month().String(), d.Year()),
		Year:      d.Year(),
		Month:     int(d.Month()) - 1,
	}
}
