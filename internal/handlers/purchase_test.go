package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/facades"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"
	book := models.Book{ID: 1, Title: "The Lost Chapters", Price: 9900, Currency: "UGX"}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener)
		expectedStatusCode int
	}{
		{
			name:        "successful purchase",
			requestBody: PurchaseRequest{BookID: 1, PhoneNumber: "+256700000001"},
			setupMocks: func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				books.EXPECT().GetBook(gomock.Any(), int64(1)).Return(book, nil)
				svc.EXPECT().Purchase(gomock.Any(), userID, book, "+256700000001").
					Return(models.Transaction{UUID: "tx-1", Status: models.StatusPending, UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "unknown book",
			requestBody: PurchaseRequest{BookID: 99, PhoneNumber: "+256700000001"},
			setupMocks: func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				books.EXPECT().GetBook(gomock.Any(), int64(99)).Return(models.Book{}, services.ErrBookNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:        "invalid phone number",
			requestBody: PurchaseRequest{BookID: 1, PhoneNumber: "0700000001"},
			setupMocks: func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				books.EXPECT().GetBook(gomock.Any(), int64(1)).Return(book, nil)
				svc.EXPECT().Purchase(gomock.Any(), userID, book, "0700000001").
					Return(models.Transaction{}, facades.ErrInvalidPhoneFormat)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "provider rejection",
			requestBody: PurchaseRequest{BookID: 1, PhoneNumber: "+256700000001"},
			setupMocks: func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				books.EXPECT().GetBook(gomock.Any(), int64(1)).Return(book, nil)
				svc.EXPECT().Purchase(gomock.Any(), userID, book, "+256700000001").
					Return(models.Transaction{}, &facades.GatewayError{Message: "insufficient funds", StatusCode: 400})
			},
			expectedStatusCode: http.StatusBadGateway,
		},
		{
			name:        "invalid request body",
			requestBody: "not-json",
			setupMocks: func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "unauthorized missing token",
			requestBody: PurchaseRequest{BookID: 1, PhoneNumber: "+256700000001"},
			setupMocks: func(svc *MockPurchaser, books *MockBookGetter, tokener *MockPurchaseTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPurchaser(ctrl)
			mockBooks := NewMockBookGetter(ctrl)
			mockTokener := NewMockPurchaseTokener(ctrl)
			tt.setupMocks(mockSvc, mockBooks, mockTokener)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/purchase", &body)
			rec := httptest.NewRecorder()

			NewPurchaseHandler(mockSvc, mockBooks, mockTokener)(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}
