package enterprise

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// Subscription is either individual (ProfileID set) or enterprise-wide
// (EnterpriseID set). Wallet access derives from it, it is never granted
// directly.
type Subscription struct {
	ID           uuid.UUID
	ProfileID    *uuid.UUID
	EnterpriseID *uuid.UUID
	PlanName     string
	Status       SubscriptionStatus
	ExpiresAt    *time.Time
}

// IsCurrent reports whether the subscription grants access at now.
// A nil ExpiresAt means the subscription does not expire.
func (s Subscription) IsCurrent(now time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	if s.ExpiresAt == nil {
		return true
	}
	return s.ExpiresAt.After(now)
}
