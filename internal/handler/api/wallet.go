package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/usecase/queries"
)

type WalletHandler struct {
	wallet queries.WalletQueries
}

func NewWalletHandler(wallet queries.WalletQueries) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// @Summary Wallet access verdict
// @Description Whether the caller currently has wallet access; evaluation failures read as denied
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WalletAccessResponse
// @Failure 401 {object} httperr.Response
// @Router /wallet/access [get]
func (h *WalletHandler) Access(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		// No identity means no access, same verdict shape as everyone else.
		c.JSON(http.StatusOK, resdto.WalletAccessResponse{WalletAccess: false})
		return
	}

	c.JSON(http.StatusOK, resdto.WalletAccessResponse{
		WalletAccess: h.wallet.HasWalletAccess(c.Request.Context(), &profileID),
	})
}
