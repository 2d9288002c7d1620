package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/proworker-backend/internal/logger"
	"github.com/ignatzorin/proworker-backend/internal/models"
	"github.com/ignatzorin/proworker-backend/internal/pkg/apperror"
)

func init() {
	logger.Init("error", "test")
}

type mockWorkerRepo struct {
	mock.Mock
}

func (m *mockWorkerRepo) GetByID(ctx context.Context, workerID int64) (*models.WorkerProfile, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerProfile), args.Error(1)
}

func (m *mockWorkerRepo) GetSettings(ctx context.Context, workerID int64) (*models.WorkerSettings, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerSettings), args.Error(1)
}

func (m *mockWorkerRepo) GetLocation(ctx context.Context, workerID int64) (*models.Location, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *mockWorkerRepo) ListAll(ctx context.Context) ([]models.WorkerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkerProfile), args.Error(1)
}

func (m *mockWorkerRepo) ListAllLocations(ctx context.Context) ([]models.PeerLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PeerLocation), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) ListByWorker(ctx context.Context, workerID int64) ([]models.Order, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) ListByWorker(ctx context.Context, workerID int64) ([]models.Review, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) CountMedia(ctx context.Context, workerID int64) (*models.MediaCounts, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaCounts), args.Error(1)
}

type mockMediaRepo struct {
	mock.Mock
}

func (m *mockMediaRepo) CountPortfolio(ctx context.Context, workerID int64) (*models.MediaCounts, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaCounts), args.Error(1)
}

func (m *mockMediaRepo) ListMedia(ctx context.Context, workerID int64) ([]models.WorkerMedia, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkerMedia), args.Error(1)
}

type mockTrainingRepo struct {
	mock.Mock
}

func (m *mockTrainingRepo) ListByWorker(ctx context.Context, workerID int64) ([]models.TrainingRecord, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainingRecord), args.Error(1)
}

func (m *mockTrainingRepo) CountCatalog(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) GetWeek(ctx context.Context, workerID int64) (*models.WeekSchedule, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeekSchedule), args.Error(1)
}

func (m *mockScheduleRepo) ListMonthNotes(ctx context.Context, workerID int64) ([]models.MonthSchedule, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MonthSchedule), args.Error(1)
}

type contextMocks struct {
	workers  *mockWorkerRepo
	orders   *mockOrderRepo
	reviews  *mockReviewRepo
	media    *mockMediaRepo
	training *mockTrainingRepo
	schedule *mockScheduleRepo
}

func newContextMocks() *contextMocks {
	return &contextMocks{
		workers:  new(mockWorkerRepo),
		orders:   new(mockOrderRepo),
		reviews:  new(mockReviewRepo),
		media:    new(mockMediaRepo),
		training: new(mockTrainingRepo),
		schedule: new(mockScheduleRepo),
	}
}

func (cm *contextMocks) service(now time.Time) *ContextService {
	return NewContextService(cm.workers, cm.orders, cm.reviews, cm.media, cm.training, cm.schedule,
		func() time.Time { return now })
}

func TestContextService_WorkerNotFound(t *testing.T) {
	cm := newContextMocks()
	cm.workers.On("GetByID", mock.Anything, int64(404)).Return(nil, apperror.ErrWorkerNotFound)

	svc := cm.service(time.Now())

	_, err := svc.BuildContext(context.Background(), 404)
	assert.True(t, apperror.IsNotFound(err))
}

func TestContextService_FullAssembly(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	comment := "client moved"

	cm := newContextMocks()
	profile := &models.WorkerProfile{
		ID: 1, Name: "Иван", Profession: "electrician", Gender: "male",
		Rating: 4.5, ChargesPerVisit: 50, ChargesPerHour: 20,
	}

	cm.workers.On("GetByID", mock.Anything, int64(1)).Return(profile, nil)
	cm.workers.On("GetSettings", mock.Anything, int64(1)).Return(&models.WorkerSettings{AppLanguage: "English"}, nil)
	cm.workers.On("GetLocation", mock.Anything, int64(1)).Return(&models.Location{Latitude: 50, Longitude: 30}, nil)
	cm.workers.On("ListAll", mock.Anything).Return([]models.WorkerProfile{
		*profile,
		{ID: 2, Profession: "electrician", Gender: "female", Rating: 4.0},
	}, nil)
	cm.workers.On("ListAllLocations", mock.Anything).Return([]models.PeerLocation{
		{WorkerID: 2, Latitude: 50.01, Longitude: 30},
	}, nil)

	cm.orders.On("ListByWorker", mock.Anything, int64(1)).Return([]models.Order{
		{ID: 10, WorkerID: 1, Status: models.OrderStatusCompleted, Date: now.AddDate(0, 0, -1), ClientName: "Анна"},
		{ID: 11, WorkerID: 1, Status: models.OrderStatusCancelled, Date: now.AddDate(0, 0, -2), RescheduleComment: &comment},
		{ID: 12, WorkerID: 1, Status: models.OrderStatusCancelled, Date: now.AddDate(0, 0, -3)},
	}, nil)
	cm.orders.On("ListAll", mock.Anything).Return([]models.Order{
		{WorkerID: 1, Status: models.OrderStatusCompleted, Date: now},
		{WorkerID: 2, Status: models.OrderStatusCompleted, Date: now},
	}, nil)

	cm.reviews.On("ListByWorker", mock.Anything, int64(1)).Return([]models.Review{{ID: 1, Comment: "good"}}, nil)
	cm.reviews.On("CountMedia", mock.Anything, int64(1)).Return(&models.MediaCounts{Images: 2, Videos: 1}, nil)

	lastUpload := now.AddDate(0, -1, 0)
	cm.media.On("CountPortfolio", mock.Anything, int64(1)).Return(&models.MediaCounts{Images: 3, Videos: 0, LastImage: &lastUpload}, nil)
	cm.media.On("ListMedia", mock.Anything, int64(1)).Return([]models.WorkerMedia{{Name: "a", URL: "u", Type: "image"}}, nil)

	cm.training.On("CountCatalog", mock.Anything).Return(10, nil)
	cm.training.On("ListByWorker", mock.Anything, int64(1)).Return([]models.TrainingRecord{
		{Status: true, CreatedAt: now.AddDate(0, 0, -5)},
		{Status: false, CreatedAt: now.AddDate(0, 0, -4)},
	}, nil)

	cm.schedule.On("GetWeek", mock.Anything, int64(1)).Return(&models.WeekSchedule{StartMonday: "09:00", EndMonday: "18:00"}, nil)
	cm.schedule.On("ListMonthNotes", mock.Anything, int64(1)).Return([]models.MonthSchedule{}, nil)

	svc := cm.service(now)
	wc, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	// Профиль и настройки
	assert.Equal(t, "Иван", wc.Profile.Name)
	require.NotNil(t, wc.Settings)
	require.NotNil(t, wc.Location)

	// Обогащение заказов
	require.Len(t, wc.Orders, 3)
	assert.Equal(t, "Completed", wc.Orders[0].StatusName)
	assert.Equal(t, "Анна", wc.Orders[0].ClientName)
	assert.Equal(t, "Client", wc.Orders[1].ClientName)
	assert.Equal(t, "client moved", wc.Orders[1].CancellationReason)
	assert.Equal(t, "No reason provided", wc.Orders[2].CancellationReason)

	// Сводка заказов
	assert.Equal(t, 3, wc.OrderSummary.Total)
	assert.Equal(t, 1, wc.OrderSummary.Completed)
	assert.Equal(t, 2, wc.OrderSummary.Cancelled)

	// Портфолио и отзывы
	assert.Equal(t, 3, wc.PortfolioAnalytics.TotalImages)
	require.NotNil(t, wc.PortfolioAnalytics.LastUpload)
	assert.Equal(t, 1, wc.ReviewAnalytics.TotalReviews)
	assert.Equal(t, 2, wc.ReviewAnalytics.TotalReviewImages)

	// Обучение
	assert.Equal(t, 10, wc.TrainingAnalytics.Total)
	assert.Equal(t, 1, wc.TrainingAnalytics.Completed)
	assert.Equal(t, 9, wc.TrainingAnalytics.Pending)
	assert.Equal(t, models.TrainingSummary{Total: 10, Completed: 1}, wc.Training)

	// Расписание
	require.Len(t, wc.WeekSummary, 7)
	assert.Equal(t, "09:00 to 18:00", wc.WeekSummary[1].Status)

	// Помесячная история
	require.NotEmpty(t, wc.MonthlyHistory)
	assert.Equal(t, "March 2025", wc.CurrentMonth.MonthName)
	assert.Equal(t, wc.MonthlyHistory[0], wc.CurrentMonth)
	assert.Equal(t, 50.0, wc.CurrentMonth.EstimatedEarnings)

	// Популяционная аналитика
	assert.Equal(t, 2, wc.Analytics.Rank.TotalWorkers)
	assert.True(t, wc.Analytics.Rank.ByScore.Known())
	assert.Equal(t, 1, wc.PeerRadius.R5km)
	assert.Equal(t, 2, wc.Benchmarks.TotalWorkers)
}

func TestContextService_DegradesOnSecondaryFailures(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection refused")

	cm := newContextMocks()
	profile := &models.WorkerProfile{ID: 1, Name: "Иван", Profession: "electrician"}

	cm.workers.On("GetByID", mock.Anything, int64(1)).Return(profile, nil)
	cm.workers.On("GetSettings", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.workers.On("GetLocation", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.workers.On("ListAll", mock.Anything).Return(nil, dbErr)
	cm.orders.On("ListByWorker", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.reviews.On("ListByWorker", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.reviews.On("CountMedia", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.media.On("CountPortfolio", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.media.On("ListMedia", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.training.On("CountCatalog", mock.Anything).Return(0, dbErr)
	cm.training.On("ListByWorker", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.schedule.On("GetWeek", mock.Anything, int64(1)).Return(nil, dbErr)
	cm.schedule.On("ListMonthNotes", mock.Anything, int64(1)).Return(nil, dbErr)

	svc := cm.service(now)
	wc, err := svc.BuildContext(context.Background(), 1)

	// Профиль есть — снимок собирается, остальные блоки пустые
	require.NoError(t, err)
	assert.Equal(t, "Иван", wc.Profile.Name)
	assert.Nil(t, wc.Settings)
	assert.Nil(t, wc.Location)
	assert.Empty(t, wc.Orders)
	assert.Zero(t, wc.OrderSummary.Total)
	assert.Empty(t, wc.WeekSummary)
	assert.Len(t, wc.MonthlyHistory, 12)
	assert.Zero(t, wc.Analytics.Rank.TotalWorkers)
}
