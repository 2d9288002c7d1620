package service

import (
	"context"
	"time"

	"github.com/ignatzorin/proworker-backend/internal/analytics"
	"github.com/ignatzorin/proworker-backend/internal/logger"
	"github.com/ignatzorin/proworker-backend/internal/models"
)

// Интерфейсы репозиториев объявлены на стороне потребителя, чтобы сервис
// можно было тестировать на моках.

type WorkerRepository interface {
	GetByID(ctx context.Context, workerID int64) (*models.WorkerProfile, error)
	GetSettings(ctx context.Context, workerID int64) (*models.WorkerSettings, error)
	GetLocation(ctx context.Context, workerID int64) (*models.Location, error)
	ListAll(ctx context.Context) ([]models.WorkerProfile, error)
	ListAllLocations(ctx context.Context) ([]models.PeerLocation, error)
}

type OrderRepository interface {
	ListByWorker(ctx context.Context, workerID int64) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

type ReviewRepository interface {
	ListByWorker(ctx context.Context, workerID int64) ([]models.Review, error)
	CountMedia(ctx context.Context, workerID int64) (*models.MediaCounts, error)
}

type MediaRepository interface {
	CountPortfolio(ctx context.Context, workerID int64) (*models.MediaCounts, error)
	ListMedia(ctx context.Context, workerID int64) ([]models.WorkerMedia, error)
}

type TrainingRepository interface {
	ListByWorker(ctx context.Context, workerID int64) ([]models.TrainingRecord, error)
	CountCatalog(ctx context.Context) (int, error)
}

type ScheduleRepository interface {
	GetWeek(ctx context.Context, workerID int64) (*models.WeekSchedule, error)
	ListMonthNotes(ctx context.Context, workerID int64) ([]models.MonthSchedule, error)
}

// Подставляется при обогащении заказов, если клиент не найден.
const defaultClientName = "Client"

// ContextService собирает полный снимок данных работника. Снимок строится
// заново на каждый запрос: отсутствие профиля — ошибка, отсутствие любых
// второстепенных данных деградирует в пустые блоки.
type ContextService struct {
	workers  WorkerRepository
	orders   OrderRepository
	reviews  ReviewRepository
	media    MediaRepository
	training TrainingRepository
	schedule ScheduleRepository
	now      func() time.Time
}

func NewContextService(
	workers WorkerRepository,
	orders OrderRepository,
	reviews ReviewRepository,
	media MediaRepository,
	training TrainingRepository,
	schedule ScheduleRepository,
	now func() time.Time,
) *ContextService {
	if now == nil {
		now = time.Now
	}
	return &ContextService{
		workers:  workers,
		orders:   orders,
		reviews:  reviews,
		media:    media,
		training: training,
		schedule: schedule,
		now:      now,
	}
}

// BuildContext собирает WorkerContext для указанного работника.
func (s *ContextService) BuildContext(ctx context.Context, workerID int64) (*models.WorkerContext, error) {
	profile, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	wc := &models.WorkerContext{Profile: *profile}

	wc.Settings, err = s.workers.GetSettings(ctx, workerID)
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", workerID).Warn("не удалось получить настройки")
	}

	wc.Location, err = s.workers.GetLocation(ctx, workerID)
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", workerID).Warn("не удалось получить координаты")
	}

	orders, err := s.orders.ListByWorker(ctx, workerID)
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", workerID).Warn("не удалось получить заказы")
	}
	wc.Orders = enrichOrders(orders)
	wc.OrderSummary = analytics.SummarizeOrders(wc.Orders)

	wc.Reviews, err = s.reviews.ListByWorker(ctx, workerID)
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", workerID).Warn("не удалось получить отзывы")
	}
	wc.ReviewAnalytics = models.ReviewAnalytics{TotalReviews: len(wc.Reviews)}
	if counts, err := s.reviews.CountMedia(ctx, workerID); err == nil && counts != nil {
		wc.ReviewAnalytics.TotalReviewImages = counts.Images
		wc.ReviewAnalytics.TotalReviewVideos = counts.Videos
		wc.ReviewAnalytics.LastReviewImage = counts.LastImage
		wc.ReviewAnalytics.LastReviewVideo = counts.LastVideo
	}

	if counts, err := s.media.CountPortfolio(ctx, workerID); err == nil && counts != nil {
		wc.PortfolioAnalytics = models.PortfolioAnalytics{
			TotalImages: counts.Images,
			TotalVideos: counts.Videos,
			LastUpload:  latestTime(counts.LastImage, counts.LastVideo),
		}
	}
	wc.Media, _ = s.media.ListMedia(ctx, workerID)

	wc.TrainingAnalytics, wc.Training = s.buildTraining(ctx, workerID)

	wc.WeekSchedule, err = s.schedule.GetWeek(ctx, workerID)
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", workerID).Warn("не удалось получить недельное расписание")
	}
	wc.WeekSummary = analytics.BuildWeekSummary(wc.WeekSchedule)
	wc.MonthSchedule, _ = s.schedule.ListMonthNotes(ctx, workerID)

	wc.MonthlyHistory = analytics.BuildMonthlyHistory(wc.Orders, s.now(), profile.ChargesPerVisit)
	if len(wc.MonthlyHistory) > 0 {
		wc.CurrentMonth = wc.MonthlyHistory[0]
	}

	s.buildPopulationAnalytics(ctx, wc)

	return wc, nil
}

// enrichOrders дополняет заказы читаемым статусом, именем клиента и
// причиной отмены.
func enrichOrders(orders []models.Order) []models.Order {
	for i := range orders {
		o := &orders[i]
		o.StatusName = models.OrderStatusName(o.Status)
		if o.ClientName == "" {
			o.ClientName = defaultClientName
		}
		if o.Status == models.OrderStatusCancelled {
			if o.RescheduleComment != nil && *o.RescheduleComment != "" {
				o.CancellationReason = *o.RescheduleComment
			} else {
				o.CancellationReason = "No reason provided"
			}
		}
	}
	return orders
}

func (s *ContextService) buildTraining(ctx context.Context, workerID int64) (models.TrainingAnalytics, models.TrainingSummary) {
	var ta models.TrainingAnalytics

	total, err := s.training.CountCatalog(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить каталог обучения")
	}
	ta.Total = total

	records, err := s.training.ListByWorker(ctx, workerID)
	if err != nil {
		logger.Log.WithError(err).WithField("worker_id", workerID).Warn("не удалось получить прогресс обучения")
	}
	for _, rec := range records {
		if !rec.Status {
			continue
		}
		ta.Completed++
		if ta.LastCompleted == nil || rec.CreatedAt.After(*ta.LastCompleted) {
			created := rec.CreatedAt
			ta.LastCompleted = &created
		}
	}
	ta.Pending = ta.Total - ta.Completed

	return ta, models.TrainingSummary{Total: ta.Total, Completed: ta.Completed}
}

// buildPopulationAnalytics считает сравнительные блоки по всей популяции
// работников. Любая ошибка оставляет блоки пустыми.
func (s *ContextService) buildPopulationAnalytics(ctx context.Context, wc *models.WorkerContext) {
	allWorkers, err := s.workers.ListAll(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить список работников")
		return
	}
	allOrders, err := s.orders.ListAll(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить все заказы")
		return
	}
	allLocations, err := s.workers.ListAllLocations(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить координаты работников")
		allLocations = nil
	}

	wc.PeerRadius = analytics.BuildRadiusStats(wc.Profile, wc.Location, allLocations, allWorkers)

	comparison := analytics.ComparePeers(allWorkers, allOrders, wc.Profile.ID)
	wc.Benchmarks = comparison.Benchmarks
	wc.Analytics = models.WorkerAnalytics{
		Scores:          models.FormulaScores{PercentileRank: comparison.PercentileRank},
		Rank:            comparison.Rank,
		TopCities:       analytics.TopCities(allLocations, allOrders, analytics.TopCitiesLimit),
		TopProfessions:  analytics.TopProfessions(allWorkers, allOrders, analytics.TopProfessionsLimit),
		GenderStats:     comparison.GenderStats,
		ProfessionStats: comparison.ProfessionStats,
	}
}

func latestTime(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.After(*a) {
		return b
	}
	return a
}
