//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"wallet-console/internal/usecase/queries"
)

type EnterpriseBuilder struct {
	ID           uuid.UUID
	CompanyName  string
	IsActive     bool
	PlanName     string
	Status       string
	ExpiresAt    *time.Time
	Subscription bool
}

func NewEnterpriseBuilder() *EnterpriseBuilder {
	expires := time.Now().Add(30 * 24 * time.Hour)
	return &EnterpriseBuilder{
		ID:           uuid.New(),
		CompanyName:  "Test Company",
		IsActive:     true,
		PlanName:     "team",
		Status:       "active",
		ExpiresAt:    &expires,
		Subscription: true,
	}
}

func (b *EnterpriseBuilder) With(mutate func(*EnterpriseBuilder)) *EnterpriseBuilder {
	mutate(b)
	return b
}

func (b *EnterpriseBuilder) BuildView() *queries.EnterpriseView {
	view := &queries.EnterpriseView{
		ID:          b.ID,
		CompanyName: b.CompanyName,
		IsActive:    b.IsActive,
	}
	if b.Subscription {
		view.Subscription = &queries.SubscriptionView{
			PlanName:  b.PlanName,
			Status:    b.Status,
			ExpiresAt: b.ExpiresAt,
		}
	}
	return view
}
