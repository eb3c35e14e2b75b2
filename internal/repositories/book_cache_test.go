package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestBookCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewBookCacheRepository(rdb, 2*time.Second)

	books := []models.Book{
		{ID: 1, Title: "The Lost Chapters", Author: "A. Namukasa", Price: 9900, Currency: "UGX"},
		{ID: 2, Title: "Kampala Nights", Author: "J. Okot", Price: 14900, Currency: "UGX"},
	}

	t.Run("Set and Get catalog", func(t *testing.T) {
		err := repo.SetBooks(ctx, books)
		assert.NoError(t, err)

		got, err := repo.GetBooks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, books, got)
	})

	t.Run("Get missing catalog returns error", func(t *testing.T) {
		assert.NoError(t, rdb.Del(ctx, "catalog:books").Err())

		_, err := repo.GetBooks(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog not found")
	})

	t.Run("Cached catalog expires", func(t *testing.T) {
		err := repo.SetBooks(ctx, books)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetBooks(ctx)
		assert.Error(t, err)
	})
}
