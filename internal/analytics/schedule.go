package analytics

import (
	"fmt"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

// HolidayStatus — статус дня без рабочего интервала.
const HolidayStatus = "Holiday"

// BuildWeekSummary превращает недельное расписание в список статусов по
// дням, начиная с воскресенья. День считается рабочим, только если заданы
// и начало, и конец интервала; иначе это выходной. Для отсутствующего
// расписания возвращается пустой список.
func BuildWeekSummary(week *models.WeekSchedule) []models.DaySummary {
	if week == nil {
		return []models.DaySummary{}
	}

	days := []struct {
		name  string
		start string
		end   string
	}{
		{"Sunday", week.StartSunday, week.EndSunday},
		{"Monday", week.StartMonday, week.EndMonday},
		{"Tuesday", week.StartTuesday, week.EndTuesday},
		{"Wednesday", week.StartWednesday, week.EndWednesday},
		{"Thursday", week.StartThursday, week.EndThursday},
		{"Friday", week.StartFriday, week.EndFriday},
		{"Saturday", week.StartSaturday, week.EndSaturday},
	}

	summary := make([]models.DaySummary, 0, len(days))
	for _, d := range days {
		status := HolidayStatus
		if d.start != "" && d.end != "" {
			status = fmt.Sprintf("%s to %s", d.start, d.end)
		}
		summary = append(summary, models.DaySummary{Day: d.name, Status: status})
	}

	return summary
}
