package services

import (
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// SubscriptionActive decides whether the breeding features are open for this
// user. Paid tiers run until their expiry (no expiry recorded means a
// non-lapsing arrangement); the trial tier runs a fixed number of days from
// account creation unless an explicit expiry extends it.
func SubscriptionActive(user models.User, now time.Time) bool {
	switch user.SubscriptionTier {
	case models.SubscriptionTierKennel, models.SubscriptionTierPro:
		if user.SubscriptionExpiresAt == nil {
			return true
		}
		return now.Before(*user.SubscriptionExpiresAt)
	case models.SubscriptionTierTrial:
		if user.SubscriptionExpiresAt != nil {
			return now.Before(*user.SubscriptionExpiresAt)
		}
		trialEnd := user.CreatedAt.AddDate(0, 0, models.TrialPeriodDays)
		return now.Before(trialEnd)
	default:
		return false
	}
}

// TrialDaysLeft reports remaining whole trial days, zero once lapsed or for
// paid tiers.
func TrialDaysLeft(user models.User, now time.Time, location *time.Location) int {
	if user.SubscriptionTier != models.SubscriptionTierTrial {
		return 0
	}
	trialEnd := user.CreatedAt.AddDate(0, 0, models.TrialPeriodDays)
	if user.SubscriptionExpiresAt != nil {
		trialEnd = *user.SubscriptionExpiresAt
	}
	left := DaysBetween(now, trialEnd, location)
	if left < 0 {
		return 0
	}
	return left
}
