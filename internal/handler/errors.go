package handler

import (
	"errors"
	"net/http"

	"github.com/oggyb/sms-dispatch/internal/domain/group"
	"github.com/oggyb/sms-dispatch/internal/logger"
	"github.com/oggyb/sms-dispatch/internal/response"
	"github.com/oggyb/sms-dispatch/internal/sms"
)

// respondErr maps service errors onto HTTP status codes.
func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sms.ErrValidation),
		errors.Is(err, group.ErrEmptyName),
		errors.Is(err, group.ErrNameTooLong),
		errors.Is(err, group.ErrNoRecipients):
		response.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, group.ErrNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, group.ErrAlreadyExists):
		response.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, sms.ErrTransport):
		response.RespondError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Errorf("[Handler] Unexpected error: %v", err)
		response.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
