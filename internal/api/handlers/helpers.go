package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"order-quote-service/internal/platform/obs"
)

// writeJSON encodes v straight onto the wire. The status line is already
// committed when encoding starts, so a failed encode can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: req_id=%s path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
