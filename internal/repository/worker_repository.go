package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/models"
	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
)

type WorkerRepository struct {
	db *sqlx.DB
}

func NewWorkerRepository(db *sqlx.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// GetByID возвращает профиль работника или ErrWorkerNotFound.
func (r *WorkerRepository) GetByID(ctx context.Context, workerID int64) (*models.WorkerProfile, error) {
	var worker models.WorkerProfile
	err := r.db.GetContext(ctx, &worker, `
		SELECT id, name, imgurl, contact_number, rating, profession, description,
		       charges_perhour, charges_pervisit, active_status, gender
		FROM worker WHERE id = $1
	`, workerID)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetSettings возвращает настройки работника; nil без ошибки, если записи нет.
func (r *WorkerRepository) GetSettings(ctx context.Context, workerID int64) (*models.WorkerSettings, error) {
	var settings models.WorkerSettings
	err := r.db.GetContext(ctx, &settings, `
		SELECT id, workerid, applanguage, refercode, referenceid
		FROM workersettings WHERE workerid = $1
	`, workerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetLocation возвращает координаты работника через его настройки;
// nil без ошибки, если координат нет.
func (r *WorkerRepository) GetLocation(ctx context.Context, workerID int64) (*models.Location, error) {
	var location models.Location
	err := r.db.GetContext(ctx, &location, `
		SELECT l.latitude, l.longitude
		FROM location l
		JOIN workersettings ws ON ws.referenceid = l.id
		WHERE ws.workerid = $1
	`, workerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// ListAll возвращает всех работников для популяционных расчётов.
func (r *WorkerRepository) ListAll(ctx context.Context) ([]models.WorkerProfile, error) {
	var workers []models.WorkerProfile
	err := r.db.SelectContext(ctx, &workers, `
		SELECT id, name, imgurl, contact_number, rating, profession, description,
		       charges_perhour, charges_pervisit, active_status, gender
		FROM worker ORDER BY id
	`)
	return workers, err
}

// ListAllLocations возвращает координаты всех работников, у которых они заданы.
func (r *WorkerRepository) ListAllLocations(ctx context.Context) ([]models.PeerLocation, error) {
	var locations []models.PeerLocation
	err := r.db.SelectContext(ctx, &locations, `
		SELECT ws.workerid, l.latitude, l.longitude
		FROM workersettings ws
		JOIN location l ON ws.referenceid = l.id
	`)
	return locations, err
}
