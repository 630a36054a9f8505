package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oggyb/sms-dispatch/internal/request"
	"github.com/oggyb/sms-dispatch/internal/response"
	"github.com/oggyb/sms-dispatch/internal/service"
)

// SMSHandler wires HTTP endpoints to the SMS service.
type SMSHandler struct {
	svc service.SMSService
}

// NewSMSHandler constructs a new SMSHandler with its dependencies.
func NewSMSHandler(svc service.SMSService) *SMSHandler {
	return &SMSHandler{svc: svc}
}

// Send godoc
// @Summary     Send an SMS
// @Description Sends one message to the given recipients and/or a stored group.
// @Description The provider's status code and raw body are returned as data,
// @Description including 4xx/5xx answers.
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       request body request.SendSMSRequest true "Message"
// @Success     200 {object} response.SendSMSResponse
// @Failure     400 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Failure     502 {object} map[string]string
// @Router      /sms [post]
func (h *SMSHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendSMSRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.svc.Send(r.Context(), service.SendInput{
		To:    req.To,
		Group: req.Group,
		From:  req.From,
		Text:  req.Text,
	})
	if err != nil {
		respondErr(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromResult(res))
}

// Stats godoc
// @Summary     Send statistics
// @Description Returns counters of send outcomes grouped by provider status class.
// @Tags        sms
// @Produce     json
// @Success     200 {object} response.StatsResponse
// @Failure     500 {object} map[string]string
// @Router      /sms/stats [get]
func (h *SMSHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counters, err := h.svc.Stats(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.StatsPayload{Counters: counters})
}

// ResetStats godoc
// @Summary     Reset send statistics
// @Description Deletes every outcome counter.
// @Tags        sms
// @Success     204
// @Failure     500 {object} map[string]string
// @Router      /sms/stats [delete]
func (h *SMSHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetStats(r.Context()); err != nil {
		respondErr(w, err)
		return
	}

	response.RespondNoContent(w)
}
