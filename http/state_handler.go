package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"compound-interest/domain"
	"compound-interest/service"
)

// StateHandler restores and saves the calculator form between sessions.
type StateHandler struct {
	service *service.InterestService
}

func NewStateHandler(service *service.InterestService) *StateHandler {
	return &StateHandler{service: service}
}

func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.LoadState(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to load form state", "error", err)
		respondWithError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

func (h *StateHandler) SaveState(w http.ResponseWriter, r *http.Request) {
	state := domain.DefaultFormState()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&state); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SaveState(r.Context(), state); err != nil {
		slog.ErrorContext(r.Context(), "failed to save form state", "error", err)
		respondWithError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
