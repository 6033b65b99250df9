package http

import (
	"encoding/json"
	"net/http"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/upstream"
)

// writeResolved maps a service result onto the response. A success status
// carries the payload as JSON under the verbatim upstream code; every other
// status is propagated verbatim with the standard status text as body.
func writeResolved(w http.ResponseWriter, r *http.Request, status upstream.Status, payload any) {
	switch {
	case status.Success():
		writeJSON(w, r, int(status), payload)
	case status == upstream.Status(http.StatusNoContent):
		// A body after 204 is a protocol violation.
		w.WriteHeader(http.StatusNoContent)
	default:
		logger.FromRequest(r).Info().Int("status", int(status)).Msg("propagating upstream status")
		http.Error(w, http.StatusText(int(status)), int(status))
	}
}

// writeFatal reports a transport or decode failure on the upstream side.
// The caller logs the concrete error; clients only see 502.
func writeFatal(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("upstream call failed")
	http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("response encoding failed")
	}
}
