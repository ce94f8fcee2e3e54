package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davidfabkj12/mikombo-front/internal/clients"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstreamError relays a backend rejection with its own status and
// detail; transport failures become a 502.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Detail
		if msg == "" {
			msg = "upstream request rejected"
		}
		writeError(w, apiErr.Status, msg)
		return
	}
	writeError(w, http.StatusBadGateway, "upstream request failed")
}
