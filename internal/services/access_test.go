package services_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAccessService_CanRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChecker := services.NewMockPaidChecker(ctrl)
	svc := services.NewAccessService(mockChecker)

	userID := uuid.New()

	mockChecker.EXPECT().HasPaid(int64(1), userID).Return(true)
	assert.True(t, svc.CanRead(1, userID))

	mockChecker.EXPECT().HasPaid(int64(2), userID).Return(false)
	assert.False(t, svc.CanRead(2, userID))
}

func TestAccessService_CanRead_NotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChecker := services.NewMockPaidChecker(ctrl)
	svc := services.NewAccessService(mockChecker)

	userID := uuid.New()

	// The underlying store is consulted on every call, so a payment
	// landing between calls is visible immediately.
	gomock.InOrder(
		mockChecker.EXPECT().HasPaid(int64(1), userID).Return(false),
		mockChecker.EXPECT().HasPaid(int64(1), userID).Return(true),
	)

	assert.False(t, svc.CanRead(1, userID))
	assert.True(t, svc.CanRead(1, userID))
}
