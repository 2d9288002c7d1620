package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

type MediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// CountPortfolio возвращает количество и даты последних загрузок
// в портфолио работника.
func (r *MediaRepository) CountPortfolio(ctx context.Context, workerID int64) (*models.MediaCounts, error) {
	var counts models.MediaCounts
	err := r.db.GetContext(ctx, &counts, `
		SELECT
			(SELECT COUNT(*) FROM workerimage WHERE workerid = $1) AS images,
			(SELECT COUNT(*) FROM workervideo WHERE workerid = $1) AS videos,
			(SELECT MAX(createdat) FROM workerimage WHERE workerid = $1) AS last_image,
			(SELECT MAX(createdat) FROM workervideo WHERE workerid = $1) AS last_video
	`, workerID)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// ListMedia возвращает все элементы портфолио работника: сначала фото,
// потом видео, внутри типа — от свежих к старым.
func (r *MediaRepository) ListMedia(ctx context.Context, workerID int64) ([]models.WorkerMedia, error) {
	var media []models.WorkerMedia
	err := r.db.SelectContext(ctx, &media, `
		SELECT name, url, 'image' AS type, createdat FROM workerimage WHERE workerid = $1
		UNION ALL
		SELECT name, url, 'video' AS type, createdat FROM workervideo WHERE workerid = $1
		ORDER BY type, createdat DESC
	`, workerID)
	return media, err
}
