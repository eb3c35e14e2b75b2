package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
)

// FavoriteTokener defines only the methods needed by these handlers.
type FavoriteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// FavoritesManager defines the interface that the catalog service must implement.
type FavoritesManager interface {
	AddFavorite(ctx context.Context, userID uuid.UUID, bookID int64) error
	RemoveFavorite(ctx context.Context, userID uuid.UUID, bookID int64) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Book, error)
}

// FavoriteResponse represents a successful favorites mutation
// swagger:model FavoriteResponse
type FavoriteResponse struct {
	// Success message
	// default: Favorite saved
	Message string `json:"message"`
}

// FavoriteErrorResponse represents an error response for favorites endpoints
// swagger:model FavoriteErrorResponse
type FavoriteErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

func favoriteClaims(w http.ResponseWriter, r *http.Request, tokenGetter FavoriteTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}

func favoriteBookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Invalid book id"})
		return 0, false
	}
	return id, true
}

// NewListFavoritesHandler returns an HTTP handler listing the caller's favorite books.
// @Summary List favorites
// @Description Returns the authenticated user's favorite books.
// @Tags favorites
// @Produce json
// @Success 200 {array} handlers.BookResponse "Favorites returned"
// @Failure 401 {object} handlers.FavoriteErrorResponse "Unauthorized"
// @Router /favorites [get]
// @Security BearerAuth
func NewListFavoritesHandler(svc FavoritesManager, tokenGetter FavoriteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := favoriteClaims(w, r, tokenGetter)
		if !ok {
			return
		}

		books, err := svc.ListFavorites(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list favorites", "user_id", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]BookResponse, 0, len(books))
		for _, b := range books {
			resp = append(resp, toBookResponse(b))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewAddFavoriteHandler returns an HTTP handler that favorites a book.
// @Summary Add favorite
// @Description Marks a book as a favorite for the authenticated user. Idempotent.
// @Tags favorites
// @Produce json
// @Param id path int true "Book ID"
// @Success 201 {object} handlers.FavoriteResponse "Favorite saved"
// @Failure 400 {object} handlers.FavoriteErrorResponse "Invalid book id"
// @Failure 401 {object} handlers.FavoriteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FavoriteErrorResponse "Book not found"
// @Router /favorites/{id} [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc FavoritesManager, tokenGetter FavoriteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := favoriteClaims(w, r, tokenGetter)
		if !ok {
			return
		}

		bookID, ok := favoriteBookID(w, r)
		if !ok {
			return
		}

		if err := svc.AddFavorite(r.Context(), claims.UserID, bookID); err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Book not found"})
			default:
				logger.Log.Errorw("failed to add favorite", "user_id", claims.UserID, "book_id", bookID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(FavoriteResponse{Message: "Favorite saved"})
	}
}

// NewRemoveFavoriteHandler returns an HTTP handler that unfavorites a book.
// @Summary Remove favorite
// @Description Removes a book from the authenticated user's favorites. Idempotent.
// @Tags favorites
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} handlers.FavoriteResponse "Favorite removed"
// @Failure 400 {object} handlers.FavoriteErrorResponse "Invalid book id"
// @Failure 401 {object} handlers.FavoriteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FavoriteErrorResponse "Book not found"
// @Router /favorites/{id} [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc FavoritesManager, tokenGetter FavoriteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := favoriteClaims(w, r, tokenGetter)
		if !ok {
			return
		}

		bookID, ok := favoriteBookID(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveFavorite(r.Context(), claims.UserID, bookID); err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Book not found"})
			default:
				logger.Log.Errorw("failed to remove favorite", "user_id", claims.UserID, "book_id", bookID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FavoriteResponse{Message: "Favorite removed"})
	}
}
