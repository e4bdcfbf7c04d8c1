package services

import (
	"testing"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

func TestSubscriptionActive(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-06-15")
	expiryAhead := mustParseDay(t, "2026-07-01")
	expiryBehind := mustParseDay(t, "2026-06-01")

	cases := []struct {
		name string
		user models.User
		want bool
	}{
		{
			"paid tier without expiry",
			models.User{SubscriptionTier: models.SubscriptionTierKennel},
			true,
		},
		{
			"paid tier before expiry",
			models.User{SubscriptionTier: models.SubscriptionTierPro, SubscriptionExpiresAt: &expiryAhead},
			true,
		},
		{
			"paid tier after expiry",
			models.User{SubscriptionTier: models.SubscriptionTierPro, SubscriptionExpiresAt: &expiryBehind},
			false,
		},
		{
			"trial within the trial period",
			models.User{SubscriptionTier: models.SubscriptionTierTrial, CreatedAt: mustParseDay(t, "2026-06-01")},
			true,
		},
		{
			"trial lapsed",
			models.User{SubscriptionTier: models.SubscriptionTierTrial, CreatedAt: mustParseDay(t, "2026-04-01")},
			false,
		},
		{
			"trial extended by explicit expiry",
			models.User{SubscriptionTier: models.SubscriptionTierTrial, CreatedAt: mustParseDay(t, "2026-04-01"), SubscriptionExpiresAt: &expiryAhead},
			true,
		},
		{
			"unknown tier",
			models.User{SubscriptionTier: "founder"},
			false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SubscriptionActive(tc.user, now); got != tc.want {
				t.Fatalf("SubscriptionActive = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTrialDaysLeft(t *testing.T) {
	t.Parallel()

	now := mustParseDay(t, "2026-06-15")

	trial := models.User{SubscriptionTier: models.SubscriptionTierTrial, CreatedAt: mustParseDay(t, "2026-06-01")}
	if got := TrialDaysLeft(trial, now, time.UTC); got != 16 {
		t.Fatalf("days left = %d, want 16", got)
	}

	lapsed := models.User{SubscriptionTier: models.SubscriptionTierTrial, CreatedAt: mustParseDay(t, "2026-04-01")}
	if got := TrialDaysLeft(lapsed, now, time.UTC); got != 0 {
		t.Fatalf("lapsed trial should report 0 days, got %d", got)
	}

	paid := models.User{SubscriptionTier: models.SubscriptionTierPro, CreatedAt: mustParseDay(t, "2026-06-01")}
	if got := TrialDaysLeft(paid, now, time.UTC); got != 0 {
		t.Fatalf("paid tiers have no trial countdown, got %d", got)
	}
}
