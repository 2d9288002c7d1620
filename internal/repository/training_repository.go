package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

type TrainingRepository struct {
	db *sqlx.DB
}

func NewTrainingRepository(db *sqlx.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// ListByWorker возвращает записи о прохождении обучения работником.
func (r *TrainingRepository) ListByWorker(ctx context.Context, workerID int64) ([]models.TrainingRecord, error) {
	var records []models.TrainingRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, workerid, status, createdat
		FROM workertraining
		WHERE workerid = $1
		ORDER BY createdat DESC
	`, workerID)
	return records, err
}

// CountCatalog возвращает общее число обучающих видео в каталоге.
func (r *TrainingRepository) CountCatalog(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM trainingvideo`)
	return total, err
}
