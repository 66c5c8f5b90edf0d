package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/httperr"
	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/queries"
)

// SupportHandler exposes read-only lookups for support staff. Support can
// inspect accounts but never mutate them; mutations stay on the admin
// surface.
type SupportHandler struct {
	profiles    queries.ProfileQueries
	enterprises queries.EnterpriseQueries
	wallet      queries.WalletQueries
}

func NewSupportHandler(profiles queries.ProfileQueries, enterprises queries.EnterpriseQueries, wallet queries.WalletQueries) *SupportHandler {
	return &SupportHandler{profiles: profiles, enterprises: enterprises, wallet: wallet}
}

// @Summary Look up a profile by email
// @Description Find an account profile for a support ticket
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param email query string true "Account email"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /support/profiles [get]
func (h *SupportHandler) FindProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("email query parameter required"), "Email required", nil)
		return
	}

	view, err := h.profiles.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, queries.ErrProfileNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Inspect a profile's enterprise
// @Description Get the enterprise and subscription backing an account
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} resdto.EnterpriseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /support/profiles/{id}/enterprise [get]
func (h *SupportHandler) ProfileEnterprise(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile id", nil)
		return
	}

	view, err := h.enterprises.GetForProfile(c.Request.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoEnterprise), errors.Is(err, queries.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No enterprise association", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnterpriseView(view))
}

// @Summary Diagnose wallet access for an account
// @Description Re-derive the wallet-access verdict step by step for a support ticket
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} resdto.WalletDiagnosisResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /support/profiles/{id}/wallet-access [get]
func (h *SupportHandler) WalletDiagnosis(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile id", nil)
		return
	}

	diagnosis, err := h.wallet.DiagnoseWalletAccess(c.Request.Context(), profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletDiagnosis(diagnosis))
}
