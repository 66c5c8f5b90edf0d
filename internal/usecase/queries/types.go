package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProfileView is the read model handed to the session layer and the API.
type ProfileView struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	PhoneNumber     string     `json:"phone_number,omitempty"`
	Role            string     `json:"role"`
	EnterpriseID    *uuid.UUID `json:"enterprise_id,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsEmailVerified bool       `json:"is_email_verified"`
}

type SubscriptionView struct {
	PlanName  string     `json:"plan_name"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type EnterpriseView struct {
	ID           uuid.UUID         `json:"id"`
	CompanyName  string            `json:"company_name"`
	IsActive     bool              `json:"is_active"`
	Subscription *SubscriptionView `json:"subscription,omitempty"`
}

type MemberView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	IsActive bool      `json:"is_active"`
}
