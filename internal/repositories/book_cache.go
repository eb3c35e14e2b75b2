package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
)

const bookCacheKey = "catalog:books"

// BookCacheRepository caches the book catalog in Redis.
type BookCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached catalog
}

// NewBookCacheRepository creates a new repository instance with a TTL.
func NewBookCacheRepository(client *redis.Client, expiration time.Duration) *BookCacheRepository {
	return &BookCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetBooks returns the cached catalog.
func (r *BookCacheRepository) GetBooks(ctx context.Context) ([]models.Book, error) {
	val, err := r.client.Get(ctx, bookCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", bookCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog not found in cache")
		}
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal([]byte(val), &books); err != nil {
		logger.Log.Errorw("failed to decode cached catalog", "key", bookCacheKey, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", bookCacheKey,
		"result", len(books),
		"error", nil,
	)

	return books, nil
}

// SetBooks caches the catalog with the configured expiration.
func (r *BookCacheRepository) SetBooks(ctx context.Context, books []models.Book) error {
	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, bookCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", bookCacheKey,
		"count", len(books),
		"result", "ok",
		"error", err,
	)

	return err
}
