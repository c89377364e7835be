package http

import (
	"net/http"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

const msgBadBody = "Invalid request body"

// writeServiceError maps a workflow error to its status code. Internal
// errors are logged with their cause; the client only sees a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)

	var code int
	switch kind {
	case service.KindValidation, service.KindConflict, service.KindToken:
		code = http.StatusBadRequest
	case service.KindAuth:
		code = http.StatusUnauthorized
	case service.KindNotFound:
		code = http.StatusNotFound
	case service.KindRateLimited:
		code = http.StatusTooManyRequests
	default:
		code = http.StatusInternalServerError
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}

	httpx.WriteError(w, code, service.MessageOf(err))
}
