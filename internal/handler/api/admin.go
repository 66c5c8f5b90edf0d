package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "wallet-console/internal/handler/dto/request"
	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/httperr"
	"wallet-console/internal/infra"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.ProfileQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.ProfileQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary List profiles
// @Description List every account profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/profiles [get]
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileList(views))
}

// @Summary Activate or deactivate a profile
// @Description Toggle whether an account may sign in
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body reqdto.SetActiveRequest true "Activation request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/profiles/{id}/active [put]
func (h *AdminHandler) SetActive(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile id", nil)
		return
	}

	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.SetActive(c.Request.Context(), profileID, *req.IsActive); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Change a profile's role
// @Description Reassign the backend role of an account
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body reqdto.ChangeRoleRequest true "Role change request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/profiles/{id}/role [put]
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile id", nil)
		return
	}

	var req reqdto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangeRole(c.Request.Context(), profileID, req.Role); err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownRole):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown role", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
