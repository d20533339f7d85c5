package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/internal/utils"
)

// errorStatuses is checked in order; the first matching sentinel wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidTemplate, http.StatusUnprocessableEntity},
	{service.ErrCodec, http.StatusBadRequest},
	{service.ErrAccountProvider, http.StatusBadGateway},
	{service.ErrNoCurrentAccount, http.StatusConflict},
	{service.ErrCollectionNotFound, http.StatusNotFound},
	{service.ErrTemplateNotFound, http.StatusNotFound},
	{service.ErrPersistence, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with its status and user message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, errorResponse{Error: service.UserMessage(err)}, status)
}
