package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
)

// ErrBookNotFound is returned when a book id is not in the catalog.
var ErrBookNotFound = errors.New("book not found")

// BookCache caches the catalog listing.
type BookCache interface {
	GetBooks(ctx context.Context) ([]models.Book, error)     // Returns cached catalog
	SetBooks(ctx context.Context, books []models.Book) error // Caches the catalog
}

// FavoriteStore persists per-user favorites.
type FavoriteStore interface {
	Save(ctx context.Context, userID uuid.UUID, bookID int64) error
	Delete(ctx context.Context, userID uuid.UUID, bookID int64) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]int64, error)
}

// CatalogService serves the static book catalog and per-user favorites.
type CatalogService struct {
	books     []models.Book
	byID      map[int64]models.Book
	cache     BookCache
	favorites FavoriteStore
}

// NewCatalogService creates a catalog service. A nil books slice seeds the
// default catalog; cache may be nil.
func NewCatalogService(books []models.Book, cache BookCache, favorites FavoriteStore) *CatalogService {
	if books == nil {
		books = DefaultBooks()
	}
	byID := make(map[int64]models.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	return &CatalogService{
		books:     books,
		byID:      byID,
		cache:     cache,
		favorites: favorites,
	}
}

// ListBooks returns the catalog, from cache when warm.
func (s *CatalogService) ListBooks(ctx context.Context) ([]models.Book, error) {
	if s.cache != nil {
		cached, err := s.cache.GetBooks(ctx)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
		if err := s.cache.SetBooks(ctx, s.books); err != nil {
			logger.Log.Errorw("failed to cache catalog", "error", err)
		}
	}
	return s.books, nil
}

// GetBook returns the catalog entry for id.
func (s *CatalogService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	book, ok := s.byID[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return book, nil
}

// AddFavorite marks a book as a favorite for the user.
func (s *CatalogService) AddFavorite(ctx context.Context, userID uuid.UUID, bookID int64) error {
	if _, ok := s.byID[bookID]; !ok {
		return ErrBookNotFound
	}
	return s.favorites.Save(ctx, userID, bookID)
}

// RemoveFavorite removes a book from the user's favorites.
func (s *CatalogService) RemoveFavorite(ctx context.Context, userID uuid.UUID, bookID int64) error {
	if _, ok := s.byID[bookID]; !ok {
		return ErrBookNotFound
	}
	return s.favorites.Delete(ctx, userID, bookID)
}

// ListFavorites returns the user's favorite books, skipping ids no longer
// in the catalog.
func (s *CatalogService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Book, error) {
	ids, err := s.favorites.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "error", err)
		return nil, err
	}

	books := make([]models.Book, 0, len(ids))
	for _, id := range ids {
		if book, ok := s.byID[id]; ok {
			books = append(books, book)
		}
	}
	return books, nil
}

// DefaultBooks is the static bookstore catalog. Prices are whole UGX.
func DefaultBooks() []models.Book {
	return []models.Book{
		{
			ID:          1,
			Title:       "The Lost Chapters",
			Author:      "Sarah Whitman",
			Description: "A thrilling mystery novel uncovering hidden secrets buried for decades.",
			Price:       9900,
			Currency:    "UGX",
			CoverImage:  "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=600&q=60",
			PDFLink:     "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Category:    "Fiction",
		},
		{
			ID:          2,
			Title:       "Mastering React Native",
			Author:      "John Carter",
			Description: "An in-depth guide to building modern mobile apps using React Native.",
			Price:       14900,
			Currency:    "UGX",
			CoverImage:  "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=600&q=60",
			PDFLink:     "https://www.africau.edu/images/default/sample.pdf",
			Category:    "Programming",
		},
		{
			ID:          3,
			Title:       "The Art of Calm",
			Author:      "Rebecca Stone",
			Description: "A practical handbook on mindfulness, meditation, and mental clarity.",
			Price:       3500,
			Currency:    "UGX",
			CoverImage:  "https://images.unsplash.com/photo-1528207776546-365bb710ee93?w=600&q=60",
			PDFLink:     "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Category:    "Self Help",
		},
		{
			ID:          4,
			Title:       "Building Wealth 101",
			Author:      "Daniel Brooks",
			Description: "A beginner-friendly guide to saving, investing, and creating wealth.",
			Price:       5000,
			Currency:    "UGX",
			CoverImage:  "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=600&q=60",
			PDFLink:     "https://www.africau.edu/images/default/sample.pdf",
			Category:    "Finance",
		},
		{
			ID:          5,
			Title:       "Journey Through Time",
			Author:      "Michael Trent",
			Description: "A historical adventure exploring major events that shaped the world.",
			Price:       4500,
			Currency:    "UGX",
			CoverImage:  "https://images.unsplash.com/photo-1544936207-205f2cf14bfc?w=600&q=60",
			PDFLink:     "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Category:    "History",
		},
	}
}
