package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetWeek возвращает недельное расписание работника; nil без ошибки,
// если расписание не заполнено.
func (r *ScheduleRepository) GetWeek(ctx context.Context, workerID int64) (*models.WeekSchedule, error) {
	var week models.WeekSchedule
	err := r.db.GetContext(ctx, &week, `
		SELECT id, workerid,
		       start_sunday, end_sunday, start_monday, end_monday,
		       start_tuesday, end_tuesday, start_wednesday, end_wednesday,
		       start_thursday, end_thursday, start_friday, end_friday,
		       start_saturday, end_saturday
		FROM weekschedule WHERE workerid = $1
	`, workerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// ListMonthNotes возвращает заметки месячного календаря работника.
func (r *ScheduleRepository) ListMonthNotes(ctx context.Context, workerID int64) ([]models.MonthSchedule, error) {
	var notes []models.MonthSchedule
	err := r.db.SelectContext(ctx, &notes, `
		SELECT id, date, note
		FROM monthschedule
		WHERE workerid = $1
		ORDER BY date
	`, workerID)
	return notes, err
}
