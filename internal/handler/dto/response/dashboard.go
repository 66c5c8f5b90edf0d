package response

import "wallet-console/internal/usecase/queries"

// DashboardResponse is the shared console payload. Every dashboard carries
// the resolved UI role, the viewer's profile, the wallet-access verdict and
// a role-specific set of panel identifiers; the caller's role never changes
// the shape, only the contents.
type DashboardResponse struct {
	Role         string           `json:"role"`
	Profile      *ProfileResponse `json:"profile"`
	WalletAccess bool             `json:"wallet_access"`
	Panels       []string         `json:"panels"`
}

func NewDashboardResponse(role string, v *queries.ProfileView, walletAccess bool, panels []string) *DashboardResponse {
	return &DashboardResponse{
		Role:         role,
		Profile:      FromProfileView(v),
		WalletAccess: walletAccess,
		Panels:       panels,
	}
}

type WalletAccessResponse struct {
	WalletAccess bool `json:"wallet_access"`
}

// WalletDiagnosisResponse spells out which grant path produced the
// verdict, for the support console.
type WalletDiagnosisResponse struct {
	WalletAccess                  bool                  `json:"wallet_access"`
	ProfileActive                 bool                  `json:"profile_active"`
	EnterpriseActive              *bool                 `json:"enterprise_active,omitempty"`
	OwnSubscriptionCurrent        bool                  `json:"own_subscription_current"`
	EnterpriseSubscriptionCurrent bool                  `json:"enterprise_subscription_current"`
	OwnSubscription               *SubscriptionResponse `json:"own_subscription,omitempty"`
	EnterpriseSubscription        *SubscriptionResponse `json:"enterprise_subscription,omitempty"`
}

func FromWalletDiagnosis(d *queries.WalletDiagnosis) *WalletDiagnosisResponse {
	resp := &WalletDiagnosisResponse{
		WalletAccess:                  d.WalletAccess,
		ProfileActive:                 d.ProfileActive,
		EnterpriseActive:              d.EnterpriseActive,
		OwnSubscriptionCurrent:        d.OwnSubscriptionCurrent,
		EnterpriseSubscriptionCurrent: d.EnterpriseSubscriptionCurrent,
	}
	if d.OwnSubscription != nil {
		resp.OwnSubscription = FromSubscriptionView(d.OwnSubscription)
	}
	if d.EnterpriseSubscription != nil {
		resp.EnterpriseSubscription = FromSubscriptionView(d.EnterpriseSubscription)
	}
	return resp
}
