package handler

import (
	"log/slog"
	"net/http"

	"github.com/Albab47/librarylog-server/internal/auth"
	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/service"
)

// BookHandler handles book catalog HTTP requests.
//
// Routes handled:
// - POST  /books             -> Create (gated, identity-match on ?email)
// - GET   /books             -> List
// - GET   /books/{id}        -> Get
// - PATCH /update-book/{id}  -> Update (gated, identity-match on ?email)
// - PATCH /books/{id}        -> Adjust
type BookHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(catalog service.CatalogService, logger *slog.Logger) *BookHandler {
	return &BookHandler{catalog: catalog, logger: logger}
}

// Create stores a new book record.
//
// Runs behind the authentication gate. The gate only authenticates; ownership
// is checked here by matching the claim email against the email query
// parameter naming whose catalog the book is added to.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetClaims(r.Context())
	if err := auth.MatchIdentity(claims, r.URL.Query().Get("email")); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var book domain.Document
	if err := decodeJSON(r, &book); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("book.create", "Invalid JSON body"))
		return
	}

	result, err := h.catalog.CreateBook(r.Context(), book)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// List returns book records, optionally restricted by query parameters:
// `category` selects one category; a non-empty `filter` restricts to records
// with quantity above zero and takes precedence over `category`.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookFilter{
		Category: r.URL.Query().Get("category"),
		InStock:  r.URL.Query().Get("filter") != "",
	}

	books, err := h.catalog.ListBooks(r.Context(), filter)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, books)
}

// Get fetches one book by identifier. A missing record is reported as a
// JSON null body, not an error.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.catalog.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, book)
}

// Update replaces arbitrary fields on a book record.
//
// Runs behind the authentication gate with the same identity-match check as
// Create. The body is an arbitrary fields document applied as a field-wise
// replacement.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetClaims(r.Context())
	if err := auth.MatchIdentity(claims, r.URL.Query().Get("email")); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var fields domain.Document
	if err := decodeJSON(r, &fields); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("book.update", "Invalid JSON body"))
		return
	}

	result, err := h.catalog.UpdateBook(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Adjust applies numeric increments to book fields, e.g. decrementing
// quantity when a book is borrowed. Ungated: the quantity adjustment and the
// borrow record insert are two independent calls with no shared transaction.
func (h *BookHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var increments domain.Document
	if err := decodeJSON(r, &increments); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("book.adjust", "Invalid JSON body"))
		return
	}

	result, err := h.catalog.AdjustBook(r.Context(), r.PathValue("id"), increments)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
