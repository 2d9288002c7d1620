package analytics

import (
	"math"
)

// Радиус Земли в километрах.
const earthRadiusKm = 6371

// DistanceKm возвращает расстояние большого круга между двумя точками в
// километрах по формуле гаверсинусов. Функция тотальная: без ошибок,
// симметричная, ноль для совпадающих координат.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
