package handler

import (
	"log/slog"
	"net/http"

	"github.com/Albab47/librarylog-server/internal/service"
)

// CategoryHandler handles category listing requests.
type CategoryHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalog service.CatalogService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{catalog: catalog, logger: logger}
}

// List returns all book categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}
