package models

import "time"

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

const (
	SubscriptionTierTrial  = "trial"
	SubscriptionTierKennel = "kennel"
	SubscriptionTierPro    = "pro"
)

// TrialPeriodDays is how long a fresh account keeps full access before the
// subscription gate closes.
const TrialPeriodDays = 30

type User struct {
	ID                    uint   `gorm:"primaryKey"`
	Email                 string `gorm:"uniqueIndex;not null"`
	PasswordHash          string `gorm:"not null"`
	RecoveryCodeHash      string
	Role                  string `gorm:"not null;default:owner"`
	KennelName            string
	SubscriptionTier      string `gorm:"not null;default:trial"`
	SubscriptionExpiresAt *time.Time
	CreatedAt             time.Time `gorm:"not null"`
}
