package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
)

// TransactionWriteRepository mirrors the in-memory transaction store into
// postgres so transactions survive restarts.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a transaction. Re-inserting an existing uuid is a no-op,
// matching the in-memory store's append semantics.
func (r *TransactionWriteRepository) Save(ctx context.Context, tx models.Transaction) error {
	query := `
		INSERT INTO transactions (uuid, reference, book_id, book_title, amount, currency, phone_number, status, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (uuid) DO NOTHING
	`
	args := []any{tx.UUID, tx.Reference, tx.BookID, tx.BookTitle, tx.Amount, tx.Currency, tx.PhoneNumber, string(tx.Status), tx.CreatedAt, tx.UserID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tx.UUID, tx.BookID, tx.UserID, tx.Status},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateStatus replaces the status of a non-terminal row. Rows already in
// a terminal status are left untouched, mirroring the store's policy.
func (r *TransactionWriteRepository) UpdateStatus(ctx context.Context, txUUID string, newStatus models.Status, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, updated_at = $3
		WHERE uuid = $1
		  AND status NOT IN ('successful', 'failed', 'cancelled')
	`
	args := []any{txUUID, string(newStatus), updatedAt}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txUUID, newStatus},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// TransactionReadRepository reads persisted transactions.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByUUID returns the persisted transaction, or nil when unknown.
func (r *TransactionReadRepository) GetByUUID(ctx context.Context, txUUID string) (*models.Transaction, error) {
	const query = `
		SELECT uuid, reference, book_id, book_title, amount, currency, phone_number, status, created_at, updated_at, user_id
		FROM transactions
		WHERE uuid = $1
	`

	var row models.TransactionDB
	err := r.db.GetContext(ctx, &row, query, txUUID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txUUID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tx := toTransaction(row)
	return &tx, nil
}

// ListByUserID returns all persisted transactions of a user, oldest first.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	const query = `
		SELECT uuid, reference, book_id, book_title, amount, currency, phone_number, status, created_at, updated_at, user_id
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at
	`

	var rows []models.TransactionDB
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toTransactions(rows), nil
}

// List returns every persisted transaction, oldest first. Used to rebuild
// the in-memory store after a restart: terminal rows must come back too,
// read access depends on the successful ones.
func (r *TransactionReadRepository) List(ctx context.Context) ([]models.Transaction, error) {
	const query = `
		SELECT uuid, reference, book_id, book_title, amount, currency, phone_number, status, created_at, updated_at, user_id
		FROM transactions
		ORDER BY created_at, uuid
	`

	var rows []models.TransactionDB
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toTransactions(rows), nil
}

func toTransaction(row models.TransactionDB) models.Transaction {
	return models.Transaction{
		UUID:        row.UUID,
		Reference:   row.Reference,
		BookID:      row.BookID,
		BookTitle:   row.BookTitle,
		Amount:      row.Amount,
		Currency:    row.Currency,
		PhoneNumber: row.PhoneNumber,
		Status:      models.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		UserID:      row.UserID,
	}
}

func toTransactions(rows []models.TransactionDB) []models.Transaction {
	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, toTransaction(row))
	}
	return txs
}
