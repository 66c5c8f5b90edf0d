package request

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
