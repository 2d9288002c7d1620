package analytics

import (
	"math"
	"sort"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

// Веса составной оценки: 60% нормализованный рейтинг, 40% эффективность.
const (
	ratingWeight     = 0.6
	efficiencyWeight = 0.4

	// Нейтральная эффективность для работников без заказов.
	neutralEfficiency = 50
)

// PeerScore — оценка одного участника популяции. Живёт только на время
// ранжирования и наружу не отдаётся.
type PeerScore struct {
	WorkerID   int64
	Score      float64
	OrderCount int
	Gender     models.Gender
	Profession string
}

// PeerComparison — итог сравнения работника со всей популяцией.
type PeerComparison struct {
	Rank            models.RankMetrics
	PercentileRank  float64
	GenderStats     models.GenderStats
	ProfessionStats models.ProfessionStats
	Benchmarks      models.SystemBenchmarks
}

// ComputePeerScores считает составную оценку каждого работника популяции.
// ratingScore = clamp(rating / среднее по популяции * 100, 0, 130);
// efficiencyScore = clamp((завершённые - незавершённые) / всего * 100, 0, 100),
// при отсутствии заказов — нейтральные 50.
func ComputePeerScores(workers []models.WorkerProfile, orders []models.Order) []PeerScore {
	if len(workers) == 0 {
		return nil
	}

	avgRating := averageRating(workers)

	type orderTally struct {
		total     int
		completed int
	}
	tally := make(map[int64]orderTally, len(workers))
	for _, o := range orders {
		t := tally[o.WorkerID]
		t.total++
		if o.Status == models.OrderStatusCompleted {
			t.completed++
		}
		tally[o.WorkerID] = t
	}

	scores := make([]PeerScore, 0, len(workers))
	for _, w := range workers {
		t := tally[w.ID]

		ratingScore := float64(0)
		if avgRating > 0 {
			ratingScore = clamp(w.Rating/avgRating*100, 0, 130)
		}

		efficiencyScore := float64(neutralEfficiency)
		if t.total > 0 {
			nonCompleted := t.total - t.completed
			efficiencyScore = clamp(float64(t.completed-nonCompleted)/float64(t.total)*100, 0, 100)
		}

		scores = append(scores, PeerScore{
			WorkerID:   w.ID,
			Score:      ratingWeight*ratingScore + efficiencyWeight*efficiencyScore,
			OrderCount: t.total,
			Gender:     NormalizeGender(w.Gender),
			Profession: NormalizeProfession(w.Profession),
		})
	}

	return scores
}

// ComparePeers ранжирует работника targetID внутри популяции: позиция по
// составной оценке, по количеству заказов, перцентиль, позиция среди коллег
// того же пола и профессии, а также средние показатели. Равные оценки
// упорядочиваются по возрастанию id, поэтому результат не зависит от
// порядка строк в выборке.
func ComparePeers(workers []models.WorkerProfile, orders []models.Order, targetID int64) PeerComparison {
	var cmp PeerComparison
	if len(workers) == 0 {
		return cmp
	}

	var target *models.WorkerProfile
	for i := range workers {
		if workers[i].ID == targetID {
			target = &workers[i]
			break
		}
	}

	myProfession := UnknownProfession
	myGender := models.GenderOther
	if target != nil {
		myProfession = NormalizeProfession(target.Profession)
		myGender = NormalizeGender(target.Gender)
	}

	scores := ComputePeerScores(workers, orders)

	byScore := make([]PeerScore, len(scores))
	copy(byScore, scores)
	sort.SliceStable(byScore, func(i, j int) bool {
		if byScore[i].Score != byScore[j].Score {
			return byScore[i].Score > byScore[j].Score
		}
		return byScore[i].WorkerID < byScore[j].WorkerID
	})
	cmp.Rank.ByScore = rankOf(byScore, targetID)

	byOrders := make([]PeerScore, len(scores))
	copy(byOrders, scores)
	sort.SliceStable(byOrders, func(i, j int) bool {
		if byOrders[i].OrderCount != byOrders[j].OrderCount {
			return byOrders[i].OrderCount > byOrders[j].OrderCount
		}
		return byOrders[i].WorkerID < byOrders[j].WorkerID
	})
	cmp.Rank.ByOrders = rankOf(byOrders, targetID)
	cmp.Rank.TotalWorkers = len(workers)

	// Позиция среди коллег того же пола внутри той же профессии.
	genderPeers := make([]PeerScore, 0)
	for _, s := range byScore {
		if s.Profession == myProfession && s.Gender == myGender {
			genderPeers = append(genderPeers, s)
		}
	}
	cmp.GenderStats.MyRankInGender = rankOf(genderPeers, targetID)
	cmp.GenderStats.TotalGenderPeers = len(genderPeers)

	// Распределение по полу и средний рейтинг считаются по коллегам
	// той же нормализованной профессии.
	var peerRatingSum float64
	for _, s := range scores {
		if s.Profession != myProfession {
			continue
		}
		cmp.ProfessionStats.TotalPeers++
		switch s.Gender {
		case models.GenderMale:
			cmp.GenderStats.Distribution.Male++
		case models.GenderFemale:
			cmp.GenderStats.Distribution.Female++
		default:
			cmp.GenderStats.Distribution.Other++
		}
	}
	cmp.GenderStats.TotalPeers = cmp.ProfessionStats.TotalPeers

	for _, w := range workers {
		if NormalizeProfession(w.Profession) == myProfession {
			peerRatingSum += w.Rating
		}
	}
	peerCount := cmp.ProfessionStats.TotalPeers
	if peerCount == 0 {
		peerCount = 1
	}
	cmp.ProfessionStats.AvgRating = round2(peerRatingSum / float64(peerCount))

	var hourlySum float64
	for _, w := range workers {
		hourlySum += w.ChargesPerHour
	}
	cmp.Benchmarks = models.SystemBenchmarks{
		AvgRating:     round2(averageRating(workers)),
		AvgHourlyRate: math.Round(hourlySum / float64(len(workers))),
		TotalWorkers:  len(workers),
	}

	if cmp.Rank.ByScore.Known() {
		n := float64(len(workers))
		cmp.PercentileRank = clamp(math.Round((n-float64(cmp.Rank.ByScore))/n*100), 0, 100)
	}

	return cmp
}

// rankOf возвращает 1-based позицию работника в отсортированном списке;
// 0, если работника в списке нет.
func rankOf(sorted []PeerScore, workerID int64) models.Rank {
	for i, s := range sorted {
		if s.WorkerID == workerID {
			return models.Rank(i + 1)
		}
	}
	return 0
}

func averageRating(workers []models.WorkerProfile) float64 {
	if len(workers) == 0 {
		return 0
	}
	var sum float64
	for _, w := range workers {
		sum += w.Rating
	}
	return sum / float64(len(workers))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
