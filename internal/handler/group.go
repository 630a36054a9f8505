package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oggyb/sms-dispatch/internal/request"
	"github.com/oggyb/sms-dispatch/internal/response"
	"github.com/oggyb/sms-dispatch/internal/service"
)

// GroupHandler exposes CRUD endpoints for recipient groups.
type GroupHandler struct {
	svc service.SMSService
}

// NewGroupHandler constructs a new GroupHandler.
func NewGroupHandler(svc service.SMSService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// Create godoc
// @Summary     Create a recipient group
// @Tags        groups
// @Accept      json
// @Produce     json
// @Param       request body request.CreateGroupRequest true "Group"
// @Success     201 {object} response.GroupResponse
// @Failure     400 {object} map[string]string
// @Failure     409 {object} map[string]string
// @Router      /groups [post]
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGroupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	g, err := h.svc.CreateGroup(r.Context(), req.Name, req.Recipients)
	if err != nil {
		respondErr(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, response.FromDomainGroup(g))
}

// List godoc
// @Summary     List recipient groups
// @Tags        groups
// @Produce     json
// @Success     200 {object} response.GroupListResponse
// @Router      /groups [get]
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.ListGroups(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.GroupListPayload{Items: response.FromDomainGroups(gs)})
}

// Get godoc
// @Summary     Get a recipient group
// @Tags        groups
// @Produce     json
// @Param       name path string true "Group name"
// @Success     200 {object} response.GroupResponse
// @Failure     404 {object} map[string]string
// @Router      /groups/{name} [get]
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGroup(r.Context(), r.PathValue("name"))
	if err != nil {
		respondErr(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromDomainGroup(g))
}

// Delete godoc
// @Summary     Delete a recipient group
// @Tags        groups
// @Param       name path string true "Group name"
// @Success     204
// @Failure     404 {object} map[string]string
// @Router      /groups/{name} [delete]
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGroup(r.Context(), r.PathValue("name")); err != nil {
		respondErr(w, err)
		return
	}

	response.RespondNoContent(w)
}
