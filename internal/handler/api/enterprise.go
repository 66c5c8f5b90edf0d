package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "wallet-console/internal/handler/dto/request"
	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/handler/httperr"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
)

type EnterpriseHandler struct {
	cmds commands.EnterpriseCommands
	q    queries.EnterpriseQueries
}

func NewEnterpriseHandler(cmds commands.EnterpriseCommands, q queries.EnterpriseQueries) *EnterpriseHandler {
	return &EnterpriseHandler{cmds: cmds, q: q}
}

// @Summary Own enterprise
// @Description Get the enterprise the caller belongs to, including its current subscription
// @Tags enterprise
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EnterpriseResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /enterprise [get]
func (h *EnterpriseHandler) Get(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	view, err := h.q.GetForProfile(c.Request.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoEnterprise):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No enterprise association", nil)
		case errors.Is(err, queries.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnterpriseView(view))
}

// @Summary Enterprise members
// @Description List member profiles of an enterprise
// @Tags enterprise
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enterprise ID"
// @Success 200 {array} resdto.MemberResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /enterprise/{id}/members [get]
func (h *EnterpriseHandler) Members(c *gin.Context) {
	enterpriseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid enterprise id", nil)
		return
	}

	members, err := h.q.GetMembers(c.Request.Context(), enterpriseID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMemberList(members))
}

// @Summary Join enterprise
// @Description Associate the caller's USER account with an enterprise
// @Tags enterprise
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.JoinEnterpriseRequest true "Join request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /enterprise/join [post]
func (h *EnterpriseHandler) Join(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	var req reqdto.JoinEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Join(c.Request.Context(), profileID, req.EnterpriseID); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotEnterpriseUser):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only USER accounts can join an enterprise", nil)
		case errors.Is(err, commands.ErrAlreadyMember):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already a member of an enterprise", nil)
		case errors.Is(err, commands.ErrEnterpriseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Enterprise not found", nil)
		case errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Opt out of enterprise
// @Description Clear the caller's enterprise association; inherited wallet benefits end immediately
// @Tags enterprise
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /enterprise/opt-out [post]
func (h *EnterpriseHandler) OptOut(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.OptOut(c.Request.Context(), profileID); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotEnterpriseUser):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only USER accounts can leave an enterprise", nil)
		case errors.Is(err, commands.ErrNotMember):
			httperr.AbortWithError(c, http.StatusConflict, err, "No enterprise association", nil)
		case errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
