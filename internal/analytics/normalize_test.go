package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Gender
	}{
		{"male", models.GenderMale},
		{"Male", models.GenderMale},
		{"M", models.GenderMale},
		{" m ", models.GenderMale},
		{"female", models.GenderFemale},
		{"F", models.GenderFemale},
		{"FEMALE", models.GenderFemale},
		{"non-binary", models.GenderOther},
		{"", models.GenderOther},
		{"x", models.GenderOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeGender(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeProfession(t *testing.T) {
	assert.Equal(t, "electrician", NormalizeProfession("  Electrician "))
	assert.Equal(t, "plumber", NormalizeProfession("PLUMBER"))
	assert.Equal(t, UnknownProfession, NormalizeProfession(""))
	assert.Equal(t, UnknownProfession, NormalizeProfession("   "))
}
