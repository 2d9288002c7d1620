package models

import (
	"time"
)

// PortfolioAnalytics — сводка по портфолио без ссылок на файлы.
type PortfolioAnalytics struct {
	TotalImages int        `json:"total_images"`
	TotalVideos int        `json:"total_videos"`
	LastUpload  *time.Time `json:"last_upload"`
}

// ReviewAnalytics — сводка по отзывам и приложенным к ним медиа.
type ReviewAnalytics struct {
	TotalReviews      int        `json:"total_reviews"`
	TotalReviewImages int        `json:"total_review_images"`
	TotalReviewVideos int        `json:"total_review_videos"`
	LastReviewImage   *time.Time `json:"last_review_image"`
	LastReviewVideo   *time.Time `json:"last_review_video"`
}

// TrainingAnalytics — прогресс обучения относительно общего каталога.
type TrainingAnalytics struct {
	Total         int        `json:"total"`
	Completed     int        `json:"completed"`
	Pending       int        `json:"pending"`
	LastCompleted *time.Time `json:"last_completed"`
}

// TrainingSummary — краткая форма прогресса обучения.
type TrainingSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// WorkerContext — полный снимок данных работника для AI-ассистента.
// Собирается заново на каждый запрос и после сборки не изменяется.
type WorkerContext struct {
	Profile  WorkerProfile   `json:"profile"`
	Settings *WorkerSettings `json:"settings"`
	Location *Location       `json:"location"`

	Orders  []Order  `json:"orders"`
	Reviews []Review `json:"reviews"`

	WeekSchedule *WeekSchedule `json:"weekSchedule"`
	WeekSummary  []DaySummary  `json:"week_summary"`

	MonthSchedule []MonthSchedule `json:"monthSchedule"`

	MonthlyHistory []MonthlyMetric `json:"monthlyHistory"`
	CurrentMonth   MonthlyMetric   `json:"currentMonth"`

	Media []WorkerMedia `json:"media"`

	PortfolioAnalytics PortfolioAnalytics `json:"portfolioAnalytics"`
	ReviewAnalytics    ReviewAnalytics    `json:"reviewAnalytics"`
	TrainingAnalytics  TrainingAnalytics  `json:"trainingAnalytics"`
	PeerRadius         RadiusStats        `json:"peerRadiusAnalytics"`

	Benchmarks SystemBenchmarks `json:"benchmarks"`
	Analytics  WorkerAnalytics  `json:"analytics"`

	OrderSummary OrderSummary    `json:"orderSummary"`
	Training     TrainingSummary `json:"training"`
}
