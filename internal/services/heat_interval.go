package services

import "github.com/rowanleith/whelpline/internal/models"

type IntervalConfidence string

const (
	ConfidenceHigh   IntervalConfidence = "high"
	ConfidenceMedium IntervalConfidence = "medium"
)

// EstimateHeatInterval picks the cycle interval for a dog. An explicit
// per-dog interval wins and is trusted; otherwise the breed-agnostic default
// of 180 days applies with reduced confidence. The estimator never derives an
// interval from the history itself: whoever records the dog is responsible
// for setting the override once the pattern is known.
func EstimateHeatInterval(profile CycleProfile) (int, IntervalConfidence) {
	if profile.IntervalDays > 0 {
		return profile.IntervalDays, ConfidenceHigh
	}
	return models.DefaultHeatIntervalDays, ConfidenceMedium
}
