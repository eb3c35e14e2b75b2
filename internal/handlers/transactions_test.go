package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	validToken := "valid-token"

	mockSvc := NewMockTransactionReader(ctrl)
	mockTokener := NewMockTransactionTokener(ctrl)
	handler := NewListTransactionsHandler(mockSvc, mockTokener)

	t.Run("success", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().ListTransactions(gomock.Any(), userID).
			Return([]models.Transaction{{UUID: "tx-1"}, {UUID: "tx-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []TransactionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	validToken := "valid-token"

	mockSvc := NewMockTransactionReader(ctrl)
	mockTokener := NewMockTransactionTokener(ctrl)
	handler := NewGetTransactionHandler(mockSvc, mockTokener)

	t.Run("success", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().GetTransaction(gomock.Any(), "tx-1").
			Return(models.Transaction{UUID: "tx-1", Status: models.StatusSuccessful, UserID: userID}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil), "uuid", "tx-1")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TransactionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "successful", resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().GetTransaction(gomock.Any(), "missing").
			Return(models.Transaction{}, services.ErrTransactionNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/transactions/missing", nil), "uuid", "missing")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("other user's transaction is hidden", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().GetTransaction(gomock.Any(), "tx-9").
			Return(models.Transaction{UUID: "tx-9", UserID: uuid.New()}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/transactions/tx-9", nil), "uuid", "tx-9")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRecheckTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	validToken := "valid-token"

	mockSvc := NewMockTransactionRechecker(ctrl)
	mockTokener := NewMockTransactionTokener(ctrl)
	handler := NewRecheckTransactionHandler(mockSvc, mockTokener)

	t.Run("success", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().Recheck(gomock.Any(), "tx-1").
			Return(models.Transaction{UUID: "tx-1", Status: models.StatusSuccessful, UserID: userID}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/transactions/tx-1/check", nil), "uuid", "tx-1")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().Recheck(gomock.Any(), "tx-1").
			Return(models.Transaction{}, services.ErrStatusUnavailable)

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/transactions/tx-1/check", nil), "uuid", "tx-1")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().Recheck(gomock.Any(), "missing").
			Return(models.Transaction{}, services.ErrTransactionNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/transactions/missing/check", nil), "uuid", "missing")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
