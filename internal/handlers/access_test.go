package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestBookAccessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	validToken := "valid-token"

	mockSvc := NewMockReadAccessChecker(ctrl)
	mockTokener := NewMockAccessTokener(ctrl)
	handler := NewBookAccessHandler(mockSvc, mockTokener)

	t.Run("access granted", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().CanRead(int64(1), userID).Return(true)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/books/1/access", nil), "id", "1")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AccessResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Access)
		assert.Equal(t, int64(1), resp.BookID)
	})

	t.Run("access denied", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().CanRead(int64(2), userID).Return(false)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/books/2/access", nil), "id", "2")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AccessResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Access)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/books/1/access", nil), "id", "1")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/books/abc/access", nil), "id", "abc")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
