package services

import (
	"math"

	"github.com/patrykmns/droply/internal/models"
)

// Base daily intake in ml per kg of body weight.
const (
	baseRateMale   = 35
	baseRateFemale = 31
)

func ActivityMultiplier(activity string) float64 {
	switch activity {
	case models.ActivityLow:
		return 1.2
	case models.ActivityMedium:
		return 1.4
	case models.ActivityHigh:
		return 1.6
	default:
		return 1.0
	}
}

// CalculateGoal derives the recommended daily goal in ml from weight,
// gender, and activity level. Pure; the settings editor recomputes it
// live, and the user may still override the number before saving.
func CalculateGoal(weightKg int, gender string, activity string) int {
	baseRate := baseRateMale
	if gender == models.GenderFemale {
		baseRate = baseRateFemale
	}
	return int(math.Round(float64(weightKg*baseRate) * ActivityMultiplier(activity)))
}
