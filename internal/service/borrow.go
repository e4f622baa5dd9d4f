package service

import (
	"context"
	"log/slog"

	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/metrics"
	"github.com/Albab47/librarylog-server/internal/repository"
)

// BorrowService defines the interface for borrowed-book linkage operations.
type BorrowService interface {
	// Borrow stores a new record linking a book and a borrower.
	Borrow(ctx context.Context, borrow domain.Document) (*domain.InsertResult, error)

	// ListByBorrower returns all borrow records for the given email.
	ListByBorrower(ctx context.Context, email string) ([]domain.Document, error)

	// Return removes a borrow record.
	// Returns domain.EINVALID for a malformed identifier.
	Return(ctx context.Context, id string) (*domain.DeleteResult, error)

	// Find reports whether the borrower currently holds the book.
	// No matching record yields (nil, nil); absence is not an error.
	Find(ctx context.Context, bookID, email string) (domain.Document, error)
}

type borrowService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewBorrowService creates the borrow service backed by the document store.
func NewBorrowService(store *repository.Store, logger *slog.Logger) BorrowService {
	return &borrowService{store: store, logger: logger}
}

func (s *borrowService) Borrow(ctx context.Context, borrow domain.Document) (*domain.InsertResult, error) {
	result, err := s.store.InsertBorrow(ctx, borrow)
	if err != nil {
		return nil, translate(err, "borrow.create", "Failed to create borrow record")
	}

	metrics.BorrowsCreated.Inc()
	s.logger.Info("borrow recorded", "id", result.InsertedID)
	return result, nil
}

func (s *borrowService) ListByBorrower(ctx context.Context, email string) ([]domain.Document, error) {
	borrows, err := s.store.ListBorrowsByBorrower(ctx, email)
	if err != nil {
		return nil, translate(err, "borrow.list", "Failed to list borrow records")
	}
	return borrows, nil
}

func (s *borrowService) Return(ctx context.Context, id string) (*domain.DeleteResult, error) {
	result, err := s.store.DeleteBorrow(ctx, id)
	if err != nil {
		return nil, translate(err, "borrow.return", "Failed to remove borrow record")
	}

	if result.DeletedCount > 0 {
		metrics.BorrowsReturned.Inc()
	}
	s.logger.Info("borrow returned", "id", id, "deleted", result.DeletedCount)
	return result, nil
}

func (s *borrowService) Find(ctx context.Context, bookID, email string) (domain.Document, error) {
	borrow, err := s.store.FindBorrow(ctx, bookID, email)
	if err != nil {
		return nil, translate(err, "borrow.find", "Failed to look up borrow record")
	}
	return borrow, nil
}
