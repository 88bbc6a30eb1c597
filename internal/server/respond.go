package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/poolup/backend/internal/calculator"
	"github.com/poolup/backend/internal/service"
	"github.com/poolup/backend/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: "BAD_REQUEST"})
}

// writeError maps domain errors to HTTP statuses and stable machine codes.
// Forbidden and InvalidTransition stay distinct so the client can tell
// "you're not allowed" apart from "this pool already settled".
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calculator.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "INVALID_AMOUNT"})
	case errors.Is(err, calculator.ErrEmptyParticipants):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "EMPTY_PARTICIPANTS"})
	case errors.Is(err, service.ErrInvalidParticipants):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "INVALID_PARTICIPANTS"})
	case errors.Is(err, service.ErrEmptyTitle):
		writeBadRequest(w, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error(), Code: "FORBIDDEN"})
	case errors.Is(err, service.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "INVALID_TRANSITION"})
	case errors.Is(err, storage.ErrPoolNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: "NOT_FOUND"})
	default:
		slog.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "INTERNAL"})
	}
}
