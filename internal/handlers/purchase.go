package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/facades"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
)

// PurchaseTokener defines only the methods needed by this handler.
type PurchaseTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BookGetter resolves a catalog entry by id.
type BookGetter interface {
	GetBook(ctx context.Context, id int64) (models.Book, error)
}

// Purchaser defines the interface that the payment service must implement.
type Purchaser interface {
	Purchase(ctx context.Context, userID uuid.UUID, book models.Book, phoneNumber string) (models.Transaction, error)
}

// PurchaseRequest represents the JSON body for buying a book
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// Book ID
	// required: true
	// default: 1
	BookID int64 `json:"book_id"`

	// Phone number in international format
	// required: true
	// default: +256700000001
	PhoneNumber string `json:"phone_number"`
}

// PurchaseResponse represents an accepted purchase
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// Success message
	// default: Payment request submitted
	Message string `json:"message"`

	// The recorded transaction
	Transaction TransactionResponse `json:"transaction"`
}

// PurchaseErrorResponse represents an error response for purchase
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// default: Invalid amount or phone number
	Error string `json:"error"`
}

// NewPurchaseHandler returns an HTTP handler that submits a collection
// request for a book and starts status reconciliation.
// @Summary Buy a book
// @Description Submits a mobile money collection request for the book price. The returned transaction starts in a non-terminal status and is reconciled in the background.
// @Tags payments
// @Accept json
// @Produce json
// @Param purchaseRequest body handlers.PurchaseRequest true "Purchase request"
// @Success 201 {object} handlers.PurchaseResponse "Payment request submitted"
// @Failure 400 {object} handlers.PurchaseErrorResponse "Invalid amount or phone number"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.PurchaseErrorResponse "Book not found"
// @Failure 502 {object} handlers.PurchaseErrorResponse "Payment provider rejected the request"
// @Router /purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(
	svc Purchaser,
	books BookGetter,
	tokenGetter PurchaseTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode purchase request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Invalid request body"})
			return
		}

		book, err := books.GetBook(ctx, req.BookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Book not found"})
			default:
				logger.Log.Errorw("failed to get book", "book_id", req.BookID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		tx, err := svc.Purchase(ctx, claims.UserID, book, req.PhoneNumber)
		if err != nil {
			var gwErr *facades.GatewayError
			switch {
			case errors.Is(err, facades.ErrInvalidAmount),
				errors.Is(err, facades.ErrInvalidPhoneFormat):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: err.Error()})
			case errors.As(err, &gwErr):
				logger.Log.Errorw("payment provider rejected request",
					"book_id", req.BookID, "code", gwErr.ErrorCode, "err", err)
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: gwErr.Message})
			default:
				logger.Log.Errorw("failed to submit purchase", "book_id", req.BookID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PurchaseResponse{
			Message:     "Payment request submitted",
			Transaction: toTransactionResponse(tx),
		})
	}
}
