package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTransactionPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS transactions (
		uuid VARCHAR(64) PRIMARY KEY,
		reference VARCHAR(64) NOT NULL,
		book_id BIGINT NOT NULL,
		book_title VARCHAR(255) NOT NULL,
		amount BIGINT NOT NULL,
		currency VARCHAR(8) NOT NULL,
		phone_number VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP,
		user_id UUID NOT NULL
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

func sampleTransaction(txUUID string, userID uuid.UUID, st models.Status) models.Transaction {
	return models.Transaction{
		UUID:        txUUID,
		Reference:   "ref-" + txUUID,
		BookID:      1,
		BookTitle:   "The Lost Chapters",
		Amount:      9900,
		Currency:    "UGX",
		PhoneNumber: "+256700000001",
		Status:      st,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		UserID:      userID,
	}
}

func TestTransactionWriteRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	userID := uuid.New()

	tx := sampleTransaction("tx-1", userID, models.StatusPending)
	assert.NoError(t, writeRepo.Save(ctx, tx))

	got, err := readRepo.GetByUUID(ctx, "tx-1")
	assert.NoError(t, err)
	assert.Equal(t, "tx-1", got.UUID)
	assert.Equal(t, int64(9900), got.Amount)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.UpdatedAt)
}

func TestTransactionWriteRepository_SaveDuplicateIsNoOp(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	userID := uuid.New()

	first := sampleTransaction("tx-1", userID, models.StatusPending)
	assert.NoError(t, writeRepo.Save(ctx, first))

	dup := sampleTransaction("tx-1", userID, models.StatusProcessing)
	dup.BookTitle = "Different Title"
	assert.NoError(t, writeRepo.Save(ctx, dup))

	got, err := readRepo.GetByUUID(ctx, "tx-1")
	assert.NoError(t, err)
	assert.Equal(t, "The Lost Chapters", got.BookTitle, "first insertion must survive")
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestTransactionWriteRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	userID := uuid.New()

	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-1", userID, models.StatusPending)))

	at := time.Now().UTC().Truncate(time.Second)
	assert.NoError(t, writeRepo.UpdateStatus(ctx, "tx-1", models.StatusSuccessful, at))

	got, err := readRepo.GetByUUID(ctx, "tx-1")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusSuccessful, got.Status)
	assert.NotNil(t, got.UpdatedAt)
}

func TestTransactionWriteRepository_UpdateStatus_TerminalRowUntouched(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	userID := uuid.New()

	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-1", userID, models.StatusSuccessful)))
	assert.NoError(t, writeRepo.UpdateStatus(ctx, "tx-1", models.StatusFailed, time.Now()))

	got, err := readRepo.GetByUUID(ctx, "tx-1")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusSuccessful, got.Status)
}

func TestTransactionReadRepository_ListByUserID(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	userA := uuid.New()
	userB := uuid.New()

	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-1", userA, models.StatusPending)))
	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-2", userB, models.StatusPending)))

	got, err := readRepo.ListByUserID(ctx, userA)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "tx-1", got[0].UUID)
}

func TestTransactionReadRepository_GetByUUID_MissingReturnsNil(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)

	got, err := readRepo.GetByUUID(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransactionReadRepository_List(t *testing.T) {
	db, teardown := setupTransactionPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	userID := uuid.New()

	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-1", userID, models.StatusPending)))
	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-2", userID, models.StatusSuccessful)))
	assert.NoError(t, writeRepo.Save(ctx, sampleTransaction("tx-3", userID, models.StatusProcessing)))

	// Terminal rows come back too: paid access is rebuilt from them.
	got, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "tx-1", got[0].UUID)
	assert.Equal(t, "tx-2", got[1].UUID)
	assert.Equal(t, models.StatusSuccessful, got[1].Status)
	assert.Equal(t, "tx-3", got[2].UUID)
}
