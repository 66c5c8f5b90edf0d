package request

import "github.com/google/uuid"

type JoinEnterpriseRequest struct {
	EnterpriseID uuid.UUID `json:"enterprise_id" binding:"required"`
}
