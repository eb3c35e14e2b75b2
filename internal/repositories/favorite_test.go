package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupFavoritePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		user_id UUID NOT NULL,
		book_id BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, book_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestFavoriteRepository_SaveAndList(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewFavoriteRepository(db, nil)
	userID := uuid.New()

	assert.NoError(t, repo.Save(ctx, userID, 1))
	assert.NoError(t, repo.Save(ctx, userID, 3))
	assert.NoError(t, repo.Save(ctx, userID, 1), "re-favoriting must not fail")

	got, err := repo.ListByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, got)
}

func TestFavoriteRepository_Delete(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewFavoriteRepository(db, nil)
	userID := uuid.New()

	assert.NoError(t, repo.Save(ctx, userID, 2))
	assert.NoError(t, repo.Delete(ctx, userID, 2))
	assert.NoError(t, repo.Delete(ctx, userID, 2), "deleting a non-favorite must not fail")

	got, err := repo.ListByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFavoriteRepository_ListIsPerUser(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewFavoriteRepository(db, nil)
	userA := uuid.New()
	userB := uuid.New()

	assert.NoError(t, repo.Save(ctx, userA, 1))
	assert.NoError(t, repo.Save(ctx, userB, 2))

	got, err := repo.ListByUserID(ctx, userA)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1}, got)
}
