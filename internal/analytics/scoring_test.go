package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

func worker(id int64, rating float64, profession, gender string) models.WorkerProfile {
	return models.WorkerProfile{
		ID:         id,
		Rating:     rating,
		Profession: profession,
		Gender:     gender,
	}
}

func ordersFor(workerID int64, completed, other int) []models.Order {
	orders := make([]models.Order, 0, completed+other)
	for i := 0; i < completed; i++ {
		orders = append(orders, models.Order{WorkerID: workerID, Status: models.OrderStatusCompleted, Date: time.Now()})
	}
	for i := 0; i < other; i++ {
		orders = append(orders, models.Order{WorkerID: workerID, Status: models.OrderStatusCancelled, Date: time.Now()})
	}
	return orders
}

func TestComputePeerScores_NeutralEfficiencyWithoutOrders(t *testing.T) {
	workers := []models.WorkerProfile{worker(1, 4.0, "electrician", "male")}

	scores := ComputePeerScores(workers, nil)

	require.Len(t, scores, 1)
	// rating == avg → ratingScore 100; без заказов эффективность нейтральная
	assert.InDelta(t, 0.6*100+0.4*50, scores[0].Score, 1e-9)
}

func TestComputePeerScores_RatingScoreCapped(t *testing.T) {
	workers := []models.WorkerProfile{
		worker(1, 5.0, "electrician", "male"),
		worker(2, 1.0, "electrician", "male"),
	}

	scores := ComputePeerScores(workers, nil)

	// avg = 3.0, у первого 5/3*100 = 166 → ограничено 130
	assert.InDelta(t, 0.6*130+0.4*50, scores[0].Score, 1e-9)
}

func TestComparePeers_RanksWithinBounds(t *testing.T) {
	workers := []models.WorkerProfile{
		worker(1, 4.5, "electrician", "male"),
		worker(2, 4.0, "electrician", "female"),
		worker(3, 3.5, "plumber", "male"),
	}
	orders := append(ordersFor(1, 5, 1), ordersFor(2, 2, 2)...)

	cmp := ComparePeers(workers, orders, 1)

	assert.Equal(t, 3, cmp.Rank.TotalWorkers)
	require.True(t, cmp.Rank.ByScore.Known())
	require.True(t, cmp.Rank.ByOrders.Known())
	assert.GreaterOrEqual(t, int(cmp.Rank.ByScore), 1)
	assert.LessOrEqual(t, int(cmp.Rank.ByScore), 3)
	assert.Equal(t, models.Rank(1), cmp.Rank.ByOrders)
}

func TestComparePeers_TieBreakByAscendingID(t *testing.T) {
	// Полностью одинаковые работники: позиция определяется id
	workers := []models.WorkerProfile{
		worker(30, 4.0, "electrician", "male"),
		worker(10, 4.0, "electrician", "male"),
		worker(20, 4.0, "electrician", "male"),
	}

	cmp10 := ComparePeers(workers, nil, 10)
	cmp20 := ComparePeers(workers, nil, 20)
	cmp30 := ComparePeers(workers, nil, 30)

	assert.Equal(t, models.Rank(1), cmp10.Rank.ByScore)
	assert.Equal(t, models.Rank(2), cmp20.Rank.ByScore)
	assert.Equal(t, models.Rank(3), cmp30.Rank.ByScore)
}

func TestComparePeers_UnknownTarget(t *testing.T) {
	workers := []models.WorkerProfile{
		worker(1, 4.0, "electrician", "male"),
		worker(2, 3.0, "plumber", "female"),
	}

	cmp := ComparePeers(workers, nil, 99)

	assert.False(t, cmp.Rank.ByScore.Known())
	assert.False(t, cmp.Rank.ByOrders.Known())
	assert.False(t, cmp.GenderStats.MyRankInGender.Known())
	assert.Zero(t, cmp.PercentileRank)
	assert.Equal(t, 2, cmp.Rank.TotalWorkers)
}

func TestComparePeers_GenderDistributionWithinProfession(t *testing.T) {
	workers := []models.WorkerProfile{
		worker(1, 4.0, "electrician", "male"),
		worker(2, 4.2, "Electrician", "female"),
		worker(3, 3.8, "electrician ", "m"),
		worker(4, 5.0, "plumber", "female"),
	}

	cmp := ComparePeers(workers, nil, 1)

	// Варианты написания профессии сводятся к одной
	assert.Equal(t, 3, cmp.ProfessionStats.TotalPeers)
	assert.Equal(t, 2, cmp.GenderStats.Distribution.Male)
	assert.Equal(t, 1, cmp.GenderStats.Distribution.Female)
	assert.Equal(t, 0, cmp.GenderStats.Distribution.Other)
	assert.Equal(t, 2, cmp.GenderStats.TotalGenderPeers)
	assert.InDelta(t, 4.0, cmp.ProfessionStats.AvgRating, 1e-9)
}

func TestComparePeers_PercentileTopWorker(t *testing.T) {
	workers := []models.WorkerProfile{
		worker(1, 5.0, "electrician", "male"),
		worker(2, 3.0, "electrician", "male"),
		worker(3, 2.0, "electrician", "male"),
		worker(4, 1.0, "electrician", "male"),
	}

	cmp := ComparePeers(workers, nil, 1)

	require.Equal(t, models.Rank(1), cmp.Rank.ByScore)
	// (4-1)/4*100 = 75
	assert.InDelta(t, 75, cmp.PercentileRank, 1e-9)
}

func TestComparePeers_Benchmarks(t *testing.T) {
	workers := []models.WorkerProfile{
		{ID: 1, Rating: 4.0, ChargesPerHour: 100, Profession: "electrician"},
		{ID: 2, Rating: 3.0, ChargesPerHour: 201, Profession: "plumber"},
	}

	cmp := ComparePeers(workers, nil, 1)

	assert.InDelta(t, 3.5, cmp.Benchmarks.AvgRating, 1e-9)
	assert.InDelta(t, 151, cmp.Benchmarks.AvgHourlyRate, 1e-9)
	assert.Equal(t, 2, cmp.Benchmarks.TotalWorkers)
}
