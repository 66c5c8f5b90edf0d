package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/httperr"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/queries"
)

// Panel sets are static per role. Authorization happened at the route
// gate; handlers here only assemble the payload for the role segment
// they are mounted under.
var (
	adminPanels      = []string{"account_management", "enterprise_directory", "system_health"}
	enterprisePanels = []string{"team_members", "subscription", "wallet_overview"}
	supportPanels    = []string{"account_lookup", "enterprise_inspector"}
	userPanels       = []string{"wallet_overview", "subscription"}
)

type DashboardHandler struct {
	profiles queries.ProfileQueries
	wallet   queries.WalletQueries
}

func NewDashboardHandler(profiles queries.ProfileQueries, wallet queries.WalletQueries) *DashboardHandler {
	return &DashboardHandler{profiles: profiles, wallet: wallet}
}

// @Summary Admin dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	h.render(c, "admin", adminPanels)
}

// @Summary Enterprise dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /enterprise/dashboard [get]
func (h *DashboardHandler) Enterprise(c *gin.Context) {
	h.render(c, "enterprise", enterprisePanels)
}

// @Summary Support dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /support/dashboard [get]
func (h *DashboardHandler) Support(c *gin.Context) {
	h.render(c, "support", supportPanels)
}

// @Summary User dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /user/dashboard [get]
func (h *DashboardHandler) User(c *gin.Context) {
	h.render(c, "user", userPanels)
}

func (h *DashboardHandler) render(c *gin.Context, role string, panels []string) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	view, err := h.profiles.GetCurrentProfile(c.Request.Context(), profileID)
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

	walletAccess := h.wallet.HasWalletAccess(c.Request.Context(), &profileID)
	c.JSON(http.StatusOK, resdto.NewDashboardResponse(role, view, walletAccess, panels))
}
