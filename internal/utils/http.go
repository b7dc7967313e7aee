package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as the JSON body of a statusCode response.
// Responses carry custodial key material, so they are marked no-store. When
// data can not be encoded nothing but a 500 is written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
