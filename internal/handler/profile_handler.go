package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"little-lemon/internal/model"
	"little-lemon/internal/service"

	"github.com/rs/zerolog"
)

// ProfileHandler handles profile-related HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profile requests.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	profile, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			writeError(w, r, http.StatusNotFound, model.ErrCodeProfileNotFound, "profile not found", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve profile", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile, h.logger)
}

// Save handles PUT /api/profile requests.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var profile model.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.Save(r.Context(), &profile); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to save profile", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, &profile, h.logger)
}
