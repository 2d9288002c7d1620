package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

func TestBuildRadiusStats_NoLocation(t *testing.T) {
	me := worker(1, 4.0, "electrician", "male")

	stats := BuildRadiusStats(me, nil, []models.PeerLocation{{WorkerID: 2, Latitude: 50, Longitude: 30}}, nil)

	assert.Equal(t, models.RadiusStats{}, stats)
}

func TestBuildRadiusStats_BandsAreCumulative(t *testing.T) {
	me := worker(1, 4.0, "electrician", "male")
	myLoc := &models.Location{Latitude: 50.0, Longitude: 30.0}

	workers := []models.WorkerProfile{
		me,
		worker(2, 4.0, "electrician", "male"),   // ~0.55 км
		worker(3, 4.0, "plumber", "female"),     // ~3.3 км
		worker(4, 4.0, "electrician", "male"),   // ~8.9 км
		worker(5, 4.0, "electrician", "female"), // ~44 км
	}
	locations := []models.PeerLocation{
		{WorkerID: 2, Latitude: 50.005, Longitude: 30.0},
		{WorkerID: 3, Latitude: 50.03, Longitude: 30.0},
		{WorkerID: 4, Latitude: 50.08, Longitude: 30.0},
		{WorkerID: 5, Latitude: 50.4, Longitude: 30.0},
	}

	stats := BuildRadiusStats(me, myLoc, locations, workers)

	assert.Equal(t, 1, stats.R1km)
	assert.Equal(t, 2, stats.R5km)
	assert.Equal(t, 3, stats.R10km)
	assert.Equal(t, 4, stats.R50km)
	// Радиусы вложены: счётчики не убывают
	assert.GreaterOrEqual(t, stats.R5km, stats.R1km)
	assert.GreaterOrEqual(t, stats.R10km, stats.R5km)
	assert.GreaterOrEqual(t, stats.R50km, stats.R10km)
	// Совпадения по профессии и полу — только в пределах 5 км
	assert.Equal(t, 1, stats.ProfessionInRadius)
	assert.Equal(t, 1, stats.GenderInRadius)
}

func TestBuildRadiusStats_SkipsSelfAndUnknown(t *testing.T) {
	me := worker(1, 4.0, "electrician", "male")
	myLoc := &models.Location{Latitude: 50.0, Longitude: 30.0}

	locations := []models.PeerLocation{
		{WorkerID: 1, Latitude: 50.0, Longitude: 30.0},  // сам работник
		{WorkerID: 99, Latitude: 50.0, Longitude: 30.0}, // нет строки работника
	}

	stats := BuildRadiusStats(me, myLoc, locations, []models.WorkerProfile{me})

	assert.Equal(t, models.RadiusStats{}, stats)
}
