package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "wallet-console/internal/handler/dto/request"
	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/httperr"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/pkg/config"
	"wallet-console/internal/pkg/cookie"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/pkg/jwt"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.ProfileQueries
	jwtSvc    *jwt.Service
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.ProfileQueries, jwtSvc *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		jwtSvc:    jwtSvc,
		cookieCfg: cookieCfg,
	}
}

// @Summary Register account
// @Description Create a profile with an enterprise workspace and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.Email, req.Password, req.FullName, req.CompanyName)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email is already registered", nil)
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respondWithSession(c, http.StatusCreated, result)
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password format", nil)
		case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrProfileInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respondWithSession(c, http.StatusOK, result)
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request (falls back to cookie)"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := h.refreshTokenFrom(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("refresh token missing"), "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenValidation), errors.Is(err, commands.ErrTokenRevoked), errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", nil)
		case errors.Is(err, commands.ErrProfileInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtSvc.AccessTokenDuration(), h.jwtSvc.RefreshTokenDuration())
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary Logout
// @Description Revoke the refresh token and clear session cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Cookies are cleared before the revocation attempt: a backend failure
	// must never keep the caller signed in locally.
	refreshToken := h.refreshTokenFrom(c)
	cookie.ClearTokenCookies(c, h.cookieCfg)

	if refreshToken != "" {
		if err := h.cmds.Logout(c.Request.Context(), refreshToken); err != nil {
			_ = c.Error(err)
		}
	}

	c.Status(http.StatusNoContent)
}

// @Summary Current profile
// @Description Get the authenticated caller's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	view, err := h.q.GetCurrentProfile(c.Request.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		case errors.Is(err, queries.ErrProfileInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Change password
// @Description Change the caller's password after verifying the current one
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ChangePasswordRequest true "Change password request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangePassword(c.Request.Context(), profileID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Current password is incorrect", nil)
		case errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Request password reset
// @Description Issue a single-use reset token; the response never reveals whether the email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.PasswordResetRequest true "Password reset request"
// @Success 202 {object} resdto.PasswordResetResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, err := h.cmds.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := resdto.PasswordResetResponse{}
	if gin.Mode() != gin.ReleaseMode {
		resp.Token = token
	}
	c.JSON(http.StatusAccepted, resp)
}

// @Summary Confirm password reset
// @Description Set a new password using a reset token
// @Tags auth
// @Accept json
// @Param request body reqdto.PasswordResetConfirmRequest true "Password reset confirmation"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, commands.ErrResetTokenInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reset token is invalid or expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Verify email
// @Description Mark the caller's email address as verified
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.VerifyEmail(c.Request.Context(), profileID); err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, result *commands.LoginResult) {
	cookie.SetTokenCookies(c, h.cookieCfg, result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtSvc.AccessTokenDuration(), h.jwtSvc.RefreshTokenDuration())

	view, err := h.q.GetCurrentProfile(c.Request.Context(), result.ProfileID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load profile", nil)
		return
	}

	c.JSON(status, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		Profile:     resdto.FromProfileView(view),
	})
}

func (h *AuthHandler) refreshTokenFrom(c *gin.Context) string {
	var req reqdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		return req.RefreshToken
	}
	return cookie.GetRefreshToken(c)
}
