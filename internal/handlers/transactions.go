package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
)

// TransactionTokener defines only the methods needed by these handlers.
type TransactionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionReader defines the read side of the payment service.
type TransactionReader interface {
	GetTransaction(ctx context.Context, txUUID string) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// TransactionRechecker performs a manual one-shot status check.
type TransactionRechecker interface {
	Recheck(ctx context.Context, txUUID string) (models.Transaction, error)
}

// TransactionResponse represents a transaction as returned to clients
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Provider transaction uuid
	UUID string `json:"uuid"`

	// Client-generated reference
	Reference string `json:"reference"`

	// Book ID
	// default: 1
	BookID int64 `json:"book_id"`

	// Book title
	BookTitle string `json:"book_title"`

	// Amount in minor units
	// default: 9900
	Amount int64 `json:"amount"`

	// Currency
	// default: UGX
	Currency string `json:"currency"`

	// Phone number the collection was requested from
	PhoneNumber string `json:"phone_number"`

	// Current status: pending, processing, successful, failed or cancelled
	// default: pending
	Status string `json:"status"`

	// Creation time, RFC3339
	CreatedAt time.Time `json:"created_at"`

	// Last provider update, RFC3339
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TransactionErrorResponse represents an error response for transaction endpoints
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Transaction not found
	Error string `json:"error"`
}

func toTransactionResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		UUID:        tx.UUID,
		Reference:   tx.Reference,
		BookID:      tx.BookID,
		BookTitle:   tx.BookTitle,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		PhoneNumber: tx.PhoneNumber,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// NewListTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary List transactions
// @Description Returns all transactions of the authenticated user, oldest first.
// @Tags payments
// @Produce json
// @Success 200 {array} handlers.TransactionResponse "Transactions returned"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionReader, tokenGetter TransactionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		txs, err := svc.ListTransactions(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "user_id", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			resp = append(resp, toTransactionResponse(tx))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewGetTransactionHandler returns an HTTP handler for a single transaction.
// @Summary Get transaction
// @Description Returns one transaction by uuid. Transactions of other users are reported as not found.
// @Tags payments
// @Produce json
// @Param uuid path string true "Transaction UUID"
// @Success 200 {object} handlers.TransactionResponse "Transaction returned"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{uuid} [get]
// @Security BearerAuth
func NewGetTransactionHandler(svc TransactionReader, tokenGetter TransactionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		txUUID := chi.URLParam(r, "uuid")

		tx, err := svc.GetTransaction(ctx, txUUID)
		if err != nil || tx.UserID != claims.UserID {
			if err != nil && !errors.Is(err, services.ErrTransactionNotFound) {
				logger.Log.Errorw("failed to get transaction", "uuid", txUUID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
				return
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toTransactionResponse(tx))
	}
}

// NewRecheckTransactionHandler returns an HTTP handler that forces a
// one-shot status check against the payment provider.
// @Summary Recheck transaction status
// @Description Queries the payment provider once and returns the transaction with any resulting status change applied.
// @Tags payments
// @Produce json
// @Param uuid path string true "Transaction UUID"
// @Success 200 {object} handlers.TransactionResponse "Transaction returned"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Failure 502 {object} handlers.TransactionErrorResponse "Provider unreachable"
// @Router /transactions/{uuid}/check [post]
// @Security BearerAuth
func NewRecheckTransactionHandler(svc TransactionRechecker, tokenGetter TransactionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		txUUID := chi.URLParam(r, "uuid")

		tx, err := svc.Recheck(ctx, txUUID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrStatusUnavailable):
				logger.Log.Warnw("provider unreachable during recheck", "uuid", txUUID)
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction status unavailable"})
			default:
				logger.Log.Errorw("failed to recheck transaction", "uuid", txUUID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if tx.UserID != claims.UserID {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toTransactionResponse(tx))
	}
}

// claimsFromRequest extracts the caller's claims or writes a 401.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokenGetter TransactionTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}
