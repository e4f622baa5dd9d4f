// Package service contains the business logic layer.
//
// Services orchestrate between repositories and domain logic. They are
// responsible for error translation (store errors -> domain errors),
// structured logging, and business metrics. Each operation is a single
// pass-through store call; there is no transaction coordination because
// the system provides no cross-call atomicity.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Albab47/librarylog-server/internal/domain"
	"github.com/Albab47/librarylog-server/internal/metrics"
	"github.com/Albab47/librarylog-server/internal/repository"
)

// CatalogService defines the interface for category and book operations.
//
// This interface enables:
// - Mocking in unit tests
// - Clear contract definition for handlers
type CatalogService interface {
	// ListCategories returns all book categories.
	ListCategories(ctx context.Context) ([]domain.Document, error)

	// CreateBook stores a new book record.
	CreateBook(ctx context.Context, book domain.Document) (*domain.InsertResult, error)

	// ListBooks returns book records matching the filter.
	ListBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Document, error)

	// GetBook fetches one book by identifier.
	// A missing record yields (nil, nil); absence is not an error.
	// Returns domain.EINVALID for a malformed identifier.
	GetBook(ctx context.Context, id string) (domain.Document, error)

	// UpdateBook replaces arbitrary fields on a book record.
	UpdateBook(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error)

	// AdjustBook applies numeric increments to book fields.
	AdjustBook(ctx context.Context, id string, increments domain.Document) (*domain.UpdateResult, error)
}

type catalogService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewCatalogService creates the catalog service backed by the document store.
func NewCatalogService(store *repository.Store, logger *slog.Logger) CatalogService {
	return &catalogService{store: store, logger: logger}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Document, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, translate(err, "catalog.list_categories", "Failed to list categories")
	}
	return categories, nil
}

func (s *catalogService) CreateBook(ctx context.Context, book domain.Document) (*domain.InsertResult, error) {
	result, err := s.store.InsertBook(ctx, book)
	if err != nil {
		return nil, translate(err, "catalog.create_book", "Failed to create book")
	}

	metrics.BooksCreated.Inc()
	s.logger.Info("book created", "id", result.InsertedID)
	return result, nil
}

func (s *catalogService) ListBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Document, error) {
	books, err := s.store.ListBooks(ctx, filter)
	if err != nil {
		return nil, translate(err, "catalog.list_books", "Failed to list books")
	}
	return books, nil
}

func (s *catalogService) GetBook(ctx context.Context, id string) (domain.Document, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, translate(err, "catalog.get_book", "Failed to fetch book")
	}
	return book, nil
}

func (s *catalogService) UpdateBook(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	result, err := s.store.UpdateBook(ctx, id, fields)
	if err != nil {
		return nil, translate(err, "catalog.update_book", "Failed to update book")
	}

	s.logger.Info("book updated", "id", id, "matched", result.MatchedCount, "modified", result.ModifiedCount)
	return result, nil
}

func (s *catalogService) AdjustBook(ctx context.Context, id string, increments domain.Document) (*domain.UpdateResult, error) {
	result, err := s.store.AdjustBook(ctx, id, increments)
	if err != nil {
		return nil, translate(err, "catalog.adjust_book", "Failed to adjust book")
	}

	s.logger.Info("book adjusted", "id", id, "matched", result.MatchedCount)
	return result, nil
}

// translate passes structured domain errors through unchanged and wraps raw
// store/driver errors as internal, so no driver detail escapes this layer.
func translate(err error, op, message string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Internal(err, op, message)
}
