package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"wallet-console/internal/usecase/queries"
)

type ProfileResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	PhoneNumber     string     `json:"phone_number,omitempty"`
	Role            string     `json:"role"`
	EnterpriseID    *uuid.UUID `json:"enterprise_id,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsEmailVerified bool       `json:"is_email_verified"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	var res ProfileResponse
	if err := copier.Copy(&res, v); err != nil {
		return &ProfileResponse{}
	}
	return &res
}

func FromProfileList(views []queries.ProfileView) []*ProfileResponse {
	res := make([]*ProfileResponse, len(views))
	for i := range views {
		res[i] = FromProfileView(&views[i])
	}
	return res
}
