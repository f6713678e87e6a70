package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Response is the body of every error reply.
type Response struct {
	Code    string `json:"code" example:"validation_error"`
	Message string `json:"message" example:"serviceId is required"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

// RespondWithError replies with a code derived from the status text,
// e.g. 401 becomes "unauthorized".
func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithCode(w, status, statusCode(status), message)
}

func RespondWithCode(w http.ResponseWriter, status int, code, message string) {
	RespondWithJSON(w, status, Response{Code: code, Message: message})
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
