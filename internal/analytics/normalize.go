package analytics

import (
	"strings"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

// UnknownProfession — каноническое значение для пустой профессии.
const UnknownProfession = "unknown"

// NormalizeGender приводит произвольную строку пола к одной из трёх
// категорий. Всё, что не распознано (включая пустую строку), считается Other.
func NormalizeGender(raw string) models.Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m":
		return models.GenderMale
	case "female", "f":
		return models.GenderFemale
	default:
		return models.GenderOther
	}
}

// NormalizeProfession приводит профессию к каноническому виду: нижний
// регистр без краевых пробелов. Пустая строка превращается в "unknown".
// Все сравнения коллег обязаны идти через это значение, иначе подбор
// по профессии молча рассыпается на варианты написания.
func NormalizeProfession(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return UnknownProfession
	}
	return p
}

// clamp ограничивает значение отрезком [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
