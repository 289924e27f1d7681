package httputil

import (
	"encoding/json"
	"log"
	"net/http"

	api_models "charchat-backend/internal/models"
)

// RespondJSON writes a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.Printf("Error encoding JSON response: %v", err)
		// Can't write header again here, just log the error
	}
}

// RespondData writes a success payload wrapped in the {"data": ...} envelope.
func RespondData(w http.ResponseWriter, statusCode int, payload interface{}) {
	RespondJSON(w, statusCode, api_models.DataEnvelope{Data: payload})
}

// RespondError writes a JSON error response with the given status code,
// machine-readable code, and human-readable message.
func RespondError(w http.ResponseWriter, statusCode int, code, message string) {
	resp := api_models.ErrorResponse{Error: api_models.ErrorBody{Code: code, Message: message}}
	RespondJSON(w, statusCode, resp)
}
