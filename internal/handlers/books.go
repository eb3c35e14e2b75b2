package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
)

// CatalogReader defines the interface that the catalog service must implement.
type CatalogReader interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
}

// BookResponse represents a single catalog entry
// swagger:model BookResponse
type BookResponse struct {
	// Book ID
	// default: 1
	ID int64 `json:"id"`

	// Title
	// default: The Lost Chapters
	Title string `json:"title"`

	// Author
	// default: Sarah Whitman
	Author string `json:"author"`

	// Description
	Description string `json:"description"`

	// Price in minor units
	// default: 9900
	Price int64 `json:"price"`

	// Currency
	// default: UGX
	Currency string `json:"currency"`

	// Cover image URL
	CoverImage string `json:"cover_image"`

	// PDF link, served only to users with read access
	PDFLink string `json:"pdf_link,omitempty"`

	// Category
	// default: Fiction
	Category string `json:"category"`
}

// BooksErrorResponse represents an error response for catalog endpoints
// swagger:model BooksErrorResponse
type BooksErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

func toBookResponse(b models.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Currency:    b.Currency,
		CoverImage:  b.CoverImage,
		PDFLink:     b.PDFLink,
		Category:    b.Category,
	}
}

// NewListBooksHandler returns an HTTP handler listing the book catalog.
// @Summary List books
// @Description Returns the full book catalog.
// @Tags catalog
// @Produce json
// @Success 200 {array} handlers.BookResponse "Catalog returned"
// @Router /books [get]
func NewListBooksHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.ListBooks(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list books", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BooksErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]BookResponse, 0, len(books))
		for _, b := range books {
			resp = append(resp, toBookResponse(b))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewGetBookHandler returns an HTTP handler for a single catalog entry.
// @Summary Get book
// @Description Returns one book by its id.
// @Tags catalog
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} handlers.BookResponse "Book returned"
// @Failure 400 {object} handlers.BooksErrorResponse "Invalid book id"
// @Failure 404 {object} handlers.BooksErrorResponse "Book not found"
// @Router /books/{id} [get]
func NewGetBookHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BooksErrorResponse{Error: "Invalid book id"})
			return
		}

		book, err := svc.GetBook(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BooksErrorResponse{Error: "Book not found"})
			default:
				logger.Log.Errorw("failed to get book", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BooksErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toBookResponse(book))
	}
}
