package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/services"
	"github.com/stretchr/testify/assert"
)

func catalogBooks() []models.Book {
	return []models.Book{
		{ID: 1, Title: "The Lost Chapters", Price: 9900, Currency: "UGX"},
		{ID: 2, Title: "Kampala Nights", Price: 14900, Currency: "UGX"},
	}
}

func TestCatalogService_ListBooks_NoCache(t *testing.T) {
	svc := services.NewCatalogService(catalogBooks(), nil, nil)

	books, err := svc.ListBooks(context.Background())
	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, "The Lost Chapters", books[0].Title)
}

func TestCatalogService_ListBooks_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := services.NewMockBookCache(ctrl)
	svc := services.NewCatalogService(catalogBooks(), mockCache, nil)

	cached := catalogBooks()[:1]
	mockCache.EXPECT().GetBooks(gomock.Any()).Return(cached, nil)

	books, err := svc.ListBooks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, books)
}

func TestCatalogService_ListBooks_CacheMissWarmsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := services.NewMockBookCache(ctrl)
	svc := services.NewCatalogService(catalogBooks(), mockCache, nil)

	mockCache.EXPECT().GetBooks(gomock.Any()).Return(nil, errors.New("catalog not found in cache"))
	mockCache.EXPECT().SetBooks(gomock.Any(), catalogBooks()).Return(nil)

	books, err := svc.ListBooks(context.Background())
	assert.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestCatalogService_ListBooks_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := services.NewMockBookCache(ctrl)
	svc := services.NewCatalogService(catalogBooks(), mockCache, nil)

	mockCache.EXPECT().GetBooks(gomock.Any()).Return(nil, errors.New("redis down"))
	mockCache.EXPECT().SetBooks(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	books, err := svc.ListBooks(context.Background())
	assert.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestCatalogService_GetBook(t *testing.T) {
	svc := services.NewCatalogService(catalogBooks(), nil, nil)

	book, err := svc.GetBook(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "Kampala Nights", book.Title)

	_, err = svc.GetBook(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrBookNotFound)
}

func TestCatalogService_DefaultCatalog(t *testing.T) {
	svc := services.NewCatalogService(nil, nil, nil)

	books, err := svc.ListBooks(context.Background())
	assert.NoError(t, err)
	assert.Len(t, books, 5)
	for _, b := range books {
		assert.Equal(t, "UGX", b.Currency)
		assert.GreaterOrEqual(t, b.Price, int64(500), "price must clear the provider minimum")
	}
}

func TestCatalogService_Favorites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorites := services.NewMockFavoriteStore(ctrl)
	svc := services.NewCatalogService(catalogBooks(), nil, mockFavorites)

	userID := uuid.New()
	ctx := context.Background()

	mockFavorites.EXPECT().Save(ctx, userID, int64(1)).Return(nil)
	assert.NoError(t, svc.AddFavorite(ctx, userID, 1))

	assert.ErrorIs(t, svc.AddFavorite(ctx, userID, 99), services.ErrBookNotFound)

	mockFavorites.EXPECT().Delete(ctx, userID, int64(1)).Return(nil)
	assert.NoError(t, svc.RemoveFavorite(ctx, userID, 1))

	assert.ErrorIs(t, svc.RemoveFavorite(ctx, userID, 99), services.ErrBookNotFound)
}

func TestCatalogService_ListFavorites_SkipsUnknownIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorites := services.NewMockFavoriteStore(ctrl)
	svc := services.NewCatalogService(catalogBooks(), nil, mockFavorites)

	userID := uuid.New()
	mockFavorites.EXPECT().ListByUserID(gomock.Any(), userID).Return([]int64{2, 42}, nil)

	books, err := svc.ListFavorites(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, int64(2), books[0].ID)
}

func TestCatalogService_ListFavorites_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorites := services.NewMockFavoriteStore(ctrl)
	svc := services.NewCatalogService(catalogBooks(), nil, mockFavorites)

	mockFavorites.EXPECT().ListByUserID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.ListFavorites(context.Background(), uuid.New())
	assert.Error(t, err)
}
