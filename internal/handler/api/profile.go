package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "wallet-console/internal/handler/dto/request"
	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/httperr"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Update contact details
// @Description Update the caller's full name and phone number
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateContactRequest true "Contact update request"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) UpdateContact(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateContact(c.Request.Context(), profileID, req.FullName, req.PhoneNumber); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidProfileUpdate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contact details", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetCurrentProfile(c.Request.Context(), profileID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load profile", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}
