package models

// Gender — нормализованная категория пола. Сырые строки из базы приводятся
// к этим трём значениям, и только они используются при сравнении коллег.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Rank — позиция в рейтинге, начиная с 1. Нулевое значение означает, что
// позиция неизвестна (работник не попал в соответствующую выборку);
// строковых заглушек вида "N/A" в данных не бывает.
type Rank int

// Known сообщает, определена ли позиция.
func (r Rank) Known() bool {
	return r > 0
}

// DaySummary — человекочитаемый статус одного дня недели.
type DaySummary struct {
	Day    string `json:"day"`
	Status string `json:"status"`
}

// MonthlyMetric — агрегат заказов за один календарный месяц.
// Month хранится с нуля (0 = январь), как в historical-данных фронтенда.
type MonthlyMetric struct {
	MonthName         string  `json:"month_name"`
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	CancelledOrders   int     `json:"cancelled_orders"`
	RescheduledOrders int     `json:"rescheduled_orders"`
	EstimatedEarnings float64 `json:"estimated_earnings"`
}

// RadiusStats — количество коллег в фиксированных радиусах от работника.
// Радиусы не исключают друг друга: коллега в 0.5 км попадает во все четыре.
type RadiusStats struct {
	R1km               int `json:"r1km"`
	R5km               int `json:"r5km"`
	R10km              int `json:"r10km"`
	R50km              int `json:"r50km"`
	ProfessionInRadius int `json:"profession_in_radius"`
	GenderInRadius     int `json:"gender_in_radius"`
}

// CityDemand — спрос в ячейке координатной сетки 0.1 градуса.
// Точные координаты работников наружу не выходят.
type CityDemand struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OrderCount  int     `json:"order_count"`
	WorkerCount int     `json:"worker_count"`
}

// ProfessionDemand — спрос по нормализованной профессии.
type ProfessionDemand struct {
	Profession  string `json:"profession"`
	OrderCount  int    `json:"order_count"`
	WorkerCount int    `json:"worker_count"`
}

// GenderDistribution — распределение коллег по полу внутри профессии.
type GenderDistribution struct {
	Male   int `json:"Male"`
	Female int `json:"Female"`
	Other  int `json:"Other"`
}

// GenderStats — статистика по полу среди коллег одной профессии.
type GenderStats struct {
	Distribution     GenderDistribution `json:"distribution"`
	TotalPeers       int                `json:"total_peers"`
	MyRankInGender   Rank               `json:"my_rank_in_gender"`
	TotalGenderPeers int                `json:"total_gender_peers"`
}

// RankMetrics — позиции работника во всей популяции.
type RankMetrics struct {
	ByScore      Rank `json:"by_score"`
	ByOrders     Rank `json:"by_orders"`
	TotalWorkers int  `json:"total_workers"`
}

// FormulaScores — расчётные показатели работника. Сейчас заполняется
// только PercentileRank, остальные поля зарезервированы в формате выдачи.
type FormulaScores struct {
	RatingQuality           float64 `json:"rating_quality"`
	OrderEfficiency         float64 `json:"order_efficiency"`
	Reliability             float64 `json:"reliability"`
	Engagement              float64 `json:"engagement"`
	ScheduleMatch           float64 `json:"schedule_match"`
	LocationDemandFit       float64 `json:"location_demand_fit"`
	ExperienceScore         float64 `json:"experience_score"`
	OverallPerformanceScore float64 `json:"overall_performance_score"`
	PercentileRank          float64 `json:"percentile_rank"`
}

// ProfessionStats — средние показатели по коллегам одной профессии.
type ProfessionStats struct {
	AvgRating  float64 `json:"avg_rating"`
	TotalPeers int     `json:"total_peers"`
}

// SystemBenchmarks — средние показатели по всей популяции работников.
type SystemBenchmarks struct {
	AvgRating        float64 `json:"avg_rating"`
	AvgHourlyRate    float64 `json:"avg_hourly_rate"`
	AvgScheduleMatch float64 `json:"avg_schedule_match"`
	TotalWorkers     int     `json:"total_workers"`
}

// WorkerAnalytics — составной аналитический блок контекста.
type WorkerAnalytics struct {
	Scores          FormulaScores      `json:"scores"`
	Rank            RankMetrics        `json:"rank"`
	TopCities       []CityDemand       `json:"top_cities"`
	TopProfessions  []ProfessionDemand `json:"top_professions"`
	GenderStats     GenderStats        `json:"gender_stats"`
	ProfessionStats ProfessionStats    `json:"profession_stats"`
}
