package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByWorker возвращает отзывы о работнике, от свежих к старым.
func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT rv.id, rv.workerid, rv.clientid, c.name, rv.comment, rv.createdat
		FROM review rv
		LEFT JOIN client c ON c.id = rv.clientid
		WHERE rv.workerid = $1
		ORDER BY rv.createdat DESC
	`, workerID)
	return reviews, err
}

// CountMedia возвращает количество и даты последних медиафайлов,
// приложенных к отзывам о работнике.
func (r *ReviewRepository) CountMedia(ctx context.Context, workerID int64) (*models.MediaCounts, error) {
	var counts models.MediaCounts
	err := r.db.GetContext(ctx, &counts, `
		SELECT
			(SELECT COUNT(*) FROM reviewimage ri
			 JOIN review rv ON rv.id = ri.reviewid WHERE rv.workerid = $1) AS images,
			(SELECT COUNT(*) FROM reviewvideo rw
			 JOIN review rv ON rv.id = rw.reviewid WHERE rv.workerid = $1) AS videos,
			(SELECT MAX(ri.createdat) FROM reviewimage ri
			 JOIN review rv ON rv.id = ri.reviewid WHERE rv.workerid = $1) AS last_image,
			(SELECT MAX(rw.createdat) FROM reviewvideo rw
			 JOIN review rv ON rv.id = rw.reviewid WHERE rv.workerid = $1) AS last_video
	`, workerID)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
