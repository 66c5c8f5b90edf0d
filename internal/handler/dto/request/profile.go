package request

type UpdateContactRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
