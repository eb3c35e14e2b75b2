package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/logger"
)

// AccessTokener defines only the methods needed by this handler.
type AccessTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ReadAccessChecker answers whether the user may read a book.
type ReadAccessChecker interface {
	CanRead(bookID int64, userID uuid.UUID) bool
}

// AccessResponse represents a read-access decision
// swagger:model AccessResponse
type AccessResponse struct {
	// Book ID
	// default: 1
	BookID int64 `json:"book_id"`

	// Whether the user may read the book
	// default: true
	Access bool `json:"access"`
}

// AccessErrorResponse represents an error response for the access endpoint
// swagger:model AccessErrorResponse
type AccessErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewBookAccessHandler returns an HTTP handler for the read-access check.
// @Summary Check read access
// @Description Reports whether the authenticated user has a successful payment for the book. Recomputed on every call.
// @Tags catalog
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} handlers.AccessResponse "Access decision returned"
// @Failure 400 {object} handlers.AccessErrorResponse "Invalid book id"
// @Failure 401 {object} handlers.AccessErrorResponse "Unauthorized"
// @Router /books/{id}/access [get]
// @Security BearerAuth
func NewBookAccessHandler(svc ReadAccessChecker, tokenGetter AccessTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AccessErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AccessErrorResponse{Error: "Unauthorized"})
			return
		}

		bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccessErrorResponse{Error: "Invalid book id"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccessResponse{
			BookID: bookID,
			Access: svc.CanRead(bookID, claims.UserID),
		})
	}
}
