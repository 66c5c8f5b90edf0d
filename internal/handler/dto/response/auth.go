package response

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	Profile     *ProfileResponse `json:"profile"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type PasswordResetResponse struct {
	// Token is only populated outside release mode; production delivery
	// happens over email.
	Token string `json:"token,omitempty"`
}
