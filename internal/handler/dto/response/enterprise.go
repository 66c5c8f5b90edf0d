package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"wallet-console/internal/usecase/queries"
)

type SubscriptionResponse struct {
	PlanName  string     `json:"plan_name"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type EnterpriseResponse struct {
	ID           uuid.UUID             `json:"id"`
	CompanyName  string                `json:"company_name"`
	IsActive     bool                  `json:"is_active"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

type MemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	IsActive bool      `json:"is_active"`
}

func FromEnterpriseView(v *queries.EnterpriseView) *EnterpriseResponse {
	var res EnterpriseResponse
	if err := copier.Copy(&res, v); err != nil {
		return &EnterpriseResponse{}
	}
	return &res
}

func FromSubscriptionView(v *queries.SubscriptionView) *SubscriptionResponse {
	var res SubscriptionResponse
	if err := copier.Copy(&res, v); err != nil {
		return &SubscriptionResponse{}
	}
	return &res
}

func FromMemberList(views []queries.MemberView) []*MemberResponse {
	res := make([]*MemberResponse, len(views))
	for i := range views {
		var m MemberResponse
		if err := copier.Copy(&m, &views[i]); err != nil {
			m = MemberResponse{}
		}
		res[i] = &m
	}
	return res
}
