package handler

import (
	"log/slog"
	"net/http"

	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/service"
)

// BorrowHandler handles borrowed-book linkage HTTP requests.
//
// Routes handled:
// - POST   /borrowed-books           -> Create
// - GET    /borrowed-books/{email}   -> ListByBorrower
// - DELETE /borrowed-books/{id}      -> Return
// - GET    /borrowed-books/find/{id} -> Find
type BorrowHandler struct {
	borrows service.BorrowService
	logger  *slog.Logger
}

// NewBorrowHandler creates a new BorrowHandler.
func NewBorrowHandler(borrows service.BorrowService, logger *slog.Logger) *BorrowHandler {
	return &BorrowHandler{borrows: borrows, logger: logger}
}

// Create stores a new borrow record linking a book and a borrower.
func (h *BorrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var borrow domain.Document
	if err := decodeJSON(r, &borrow); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("borrow.create", "Invalid JSON body"))
		return
	}

	result, err := h.borrows.Borrow(r.Context(), borrow)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// ListByBorrower returns all borrow records for the borrower email in the path.
func (h *BorrowHandler) ListByBorrower(w http.ResponseWriter, r *http.Request) {
	borrows, err := h.borrows.ListByBorrower(r.Context(), r.PathValue("email"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, borrows)
}

// Return removes a borrow record when a book comes back.
func (h *BorrowHandler) Return(w http.ResponseWriter, r *http.Request) {
	result, err := h.borrows.Return(r.Context(), r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Find checks whether the borrower given by the email query parameter
// currently holds the book in the path. No matching record is a valid
// outcome and is reported as a JSON null body.
func (h *BorrowHandler) Find(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	email := r.URL.Query().Get("email")

	borrow, err := h.borrows.Find(r.Context(), bookID, email)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, borrow)
}
