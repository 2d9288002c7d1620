package analytics

import (
	"math"
	"sort"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

// Размеры топов спроса.
const (
	TopProfessionsLimit = 5
	TopCitiesLimit      = 10
)

// TopProfessions агрегирует заказы всей популяции по нормализованной
// профессии владельца и возвращает не больше limit профессий с наибольшим
// числом заказов. Заказы работников без строки в популяции пропускаются.
func TopProfessions(workers []models.WorkerProfile, orders []models.Order, limit int) []models.ProfessionDemand {
	byID := make(map[int64]*models.WorkerProfile, len(workers))
	for i := range workers {
		byID[workers[i].ID] = &workers[i]
	}

	type professionTally struct {
		orders  int
		workers map[int64]struct{}
	}
	tally := make(map[string]*professionTally)

	for _, o := range orders {
		w, ok := byID[o.WorkerID]
		if !ok {
			continue
		}
		name := NormalizeProfession(w.Profession)

		t, ok := tally[name]
		if !ok {
			t = &professionTally{workers: make(map[int64]struct{})}
			tally[name] = t
		}
		t.orders++
		t.workers[w.ID] = struct{}{}
	}

	demand := make([]models.ProfessionDemand, 0, len(tally))
	for name, t := range tally {
		demand = append(demand, models.ProfessionDemand{
			Profession:  name,
			OrderCount:  t.orders,
			WorkerCount: len(t.workers),
		})
	}

	sort.SliceStable(demand, func(i, j int) bool {
		if demand[i].OrderCount != demand[j].OrderCount {
			return demand[i].OrderCount > demand[j].OrderCount
		}
		return demand[i].Profession < demand[j].Profession
	})

	if len(demand) > limit {
		demand = demand[:limit]
	}
	return demand
}

// TopCities агрегирует координаты работников по ячейкам сетки 0.1 градуса
// и возвращает не больше limit ячеек с наибольшим числом заказов. Сетка —
// граница приватности: точные координаты дальше этой функции не уходят.
func TopCities(locations []models.PeerLocation, orders []models.Order, limit int) []models.CityDemand {
	ordersByWorker := make(map[int64]int)
	for _, o := range orders {
		ordersByWorker[o.WorkerID]++
	}

	type cellKey struct {
		lat float64
		lng float64
	}
	cells := make(map[cellKey]*models.CityDemand)

	for _, loc := range locations {
		if loc.WorkerID == 0 {
			continue
		}
		key := cellKey{lat: snapToGrid(loc.Latitude), lng: snapToGrid(loc.Longitude)}

		cell, ok := cells[key]
		if !ok {
			cell = &models.CityDemand{Latitude: key.lat, Longitude: key.lng}
			cells[key] = cell
		}
		cell.WorkerCount++
		cell.OrderCount += ordersByWorker[loc.WorkerID]
	}

	demand := make([]models.CityDemand, 0, len(cells))
	for _, c := range cells {
		demand = append(demand, *c)
	}

	sort.SliceStable(demand, func(i, j int) bool {
		if demand[i].OrderCount != demand[j].OrderCount {
			return demand[i].OrderCount > demand[j].OrderCount
		}
		if demand[i].Latitude != demand[j].Latitude {
			return demand[i].Latitude < demand[j].Latitude
		}
		return demand[i].Longitude < demand[j].Longitude
	})

	if len(demand) > limit {
		demand = demand[:limit]
	}
	return demand
}

// snapToGrid округляет координату до одного знака после запятой.
func snapToGrid(v float64) float64 {
	return math.Round(v*10) / 10
}
