package httpx

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform wire envelope for every endpoint.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JSON writes the envelope with the given status code. A nil data is
// serialized as JSON null, never omitted.
func JSON(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Response{Message: message, Data: data})
}
