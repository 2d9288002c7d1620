package analytics

import (
	"github.com/ignatzorin/proworker-backend/internal/models"
)

// Фиксированные радиусы плотности коллег в километрах. Совпадения по
// профессии и полу считаются внутри эталонного радиуса 5 км.
const (
	radiusBand1  = 1
	radiusBand5  = 5
	radiusBand10 = 10
	radiusBand50 = 50

	referenceRadiusKm = radiusBand5
)

// BuildRadiusStats считает коллег в радиусах вокруг работника. Если у
// работника нет координат, возвращается нулевая статистика. Координаты
// без строки работника пропускаются молча. Радиусы вложены друг в друга,
// поэтому счётчики не убывают с ростом радиуса.
func BuildRadiusStats(
	me models.WorkerProfile,
	myLocation *models.Location,
	locations []models.PeerLocation,
	workers []models.WorkerProfile,
) models.RadiusStats {
	var stats models.RadiusStats
	if myLocation == nil {
		return stats
	}

	byID := make(map[int64]*models.WorkerProfile, len(workers))
	for i := range workers {
		byID[workers[i].ID] = &workers[i]
	}

	myProfession := NormalizeProfession(me.Profession)
	myGender := NormalizeGender(me.Gender)

	for _, loc := range locations {
		if loc.WorkerID == 0 || loc.WorkerID == me.ID {
			continue
		}
		peer, ok := byID[loc.WorkerID]
		if !ok {
			continue
		}

		dist := DistanceKm(myLocation.Latitude, myLocation.Longitude, loc.Latitude, loc.Longitude)

		if dist <= radiusBand1 {
			stats.R1km++
		}
		if dist <= radiusBand5 {
			stats.R5km++
		}
		if dist <= radiusBand10 {
			stats.R10km++
		}
		if dist <= radiusBand50 {
			stats.R50km++
		}

		if dist <= referenceRadiusKm {
			if NormalizeProfession(peer.Profession) == myProfession {
				stats.ProfessionInRadius++
			}
			if NormalizeGender(peer.Gender) == myGender {
				stats.GenderInRadius++
			}
		}
	}

	return stats
}
