package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Albab47/librarylog-server/internal/domain"
)

func TestListCategories_PassesRecordsThrough(t *testing.T) {
	mock := &mockCatalog{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Document, error) {
			return []domain.Document{
				{"name": "Fiction"},
				{"name": "History"},
			}, nil
		},
	}
	h := NewCategoryHandler(mock, newTestLogger())

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}

	var body []domain.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body) != 2 {
		t.Errorf("got %d categories, want 2", len(body))
	}
}

func TestListCategories_StoreFailure_GenericError(t *testing.T) {
	mock := &mockCatalog{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Document, error) {
			return nil, domain.Internal(nil, "catalog.list_categories", "Failed to list categories")
		},
	}
	h := NewCategoryHandler(mock, newTestLogger())

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
