package handler

import (
	"net/http"
	"strings"

	"little-lemon/internal/menu"
	"little-lemon/internal/model"
	"little-lemon/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service      service.MenuService
	imageBaseURL string
	logger       zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, imageBaseURL string, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service:      service,
		imageBaseURL: imageBaseURL,
		logger:       logger.With().Str("handler", "menu").Logger(),
	}
}

// GetMenu handles GET /api/menu requests. Query params: q (name substring,
// case-insensitive) and categories (comma-separated; absent means all).
// Returns the matching items grouped into category sections.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query().Get("q")
	activeCategories := parseCategories(r.URL.Query().Get("categories"))

	var items []model.MenuItem
	var err error
	if query == "" && len(activeCategories) == 0 {
		items, err = h.service.GetAll(r.Context())
	} else {
		items, err = h.service.Filter(r.Context(), query, activeCategories)
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu.Sections(items), h.logger)
}

// CategoriesResponse carries the filter vocabulary and the base URL the
// client prepends to item image references.
type CategoriesResponse struct {
	Categories   []string `json:"categories"`
	ImageBaseURL string   `json:"imageBaseUrl"`
}

// GetCategories handles GET /api/categories requests.
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, CategoriesResponse{
		Categories:   menu.AllCategories(),
		ImageBaseURL: h.imageBaseURL,
	}, h.logger)
}

// parseCategories splits a comma-separated category list, dropping empty
// entries so "?categories=" means no filter.
func parseCategories(param string) []string {
	if param == "" {
		return nil
	}

	var categories []string
	for _, c := range strings.Split(param, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}
