package config

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode JSON response")
	}
}
