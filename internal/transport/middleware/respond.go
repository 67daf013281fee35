package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same {"error","kind"} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, kind, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}{Error: msg, Kind: kind})
}
