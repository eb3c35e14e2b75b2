package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ssekandi/bookpay/internal/logger"
)

// FavoriteRepository persists per-user favorite books.
type FavoriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFavoriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FavoriteRepository {
	return &FavoriteRepository{db: db, txGetter: txGetter}
}

func (r *FavoriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save marks a book as a favorite. Re-favoriting is a no-op.
func (r *FavoriteRepository) Save(ctx context.Context, userID uuid.UUID, bookID int64) error {
	query := `
		INSERT INTO favorites (user_id, book_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, book_id) DO NOTHING
	`
	args := []any{userID, bookID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a favorite. Deleting a non-favorite is a no-op.
func (r *FavoriteRepository) Delete(ctx context.Context, userID uuid.UUID, bookID int64) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND book_id = $2
	`
	args := []any{userID, bookID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ListByUserID returns the user's favorite book ids, oldest first.
func (r *FavoriteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	const query = `
		SELECT book_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at
	`

	var bookIDs []int64
	err := r.db.SelectContext(ctx, &bookIDs, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", bookIDs,
		"error", err,
	)

	return bookIDs, err
}
