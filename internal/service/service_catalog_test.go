package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/mock"
	"github.com/storegate/gateway/internal/upstream"
	"github.com/storegate/gateway/models"
)

// catalogFixture builds n products with ascending ids. Every third product
// gets a long description so the length filter has something to drop.
func catalogFixture(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		description := fmt.Sprintf("product number %d", i)
		if i%3 == 0 {
			description = strings.Repeat("x", 150)
		}
		products = append(products, models.Product{
			ID:          i,
			Title:       fmt.Sprintf("Product %d", i),
			Price:       float64(i * 10),
			Description: description,
			Category:    "beauty",
		})
	}
	return products
}

func TestListProducts_FilterThenSkipThenLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	// 30 products; every third has a 150-char description and falls out
	// at descriptionLength=100, leaving 20: ids 1,2,4,5,7,8,...
	provider.EXPECT().
		Products(gomock.Any()).
		Return(catalogFixture(30), upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ListProducts(context.Background(), models.ProductQuery{
		DescriptionLength: 100,
		Limit:             2,
		Skip:              1,
	})

	require.NoError(t, err)
	assert.True(t, status.Success())
	// Skip and limit address positions in the filtered sequence: the
	// first survivor (id 1) is skipped, then two are taken.
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestListProducts_ZeroLimitMeansUnbounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	provider.EXPECT().
		Products(gomock.Any()).
		Return(catalogFixture(30), upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ListProducts(context.Background(), models.ProductQuery{
		DescriptionLength: 100,
		Limit:             0,
		Skip:              0,
	})

	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Len(t, got, 20)
}

func TestListProducts_SkipBeyondSurvivors(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	provider.EXPECT().
		Products(gomock.Any()).
		Return(catalogFixture(3), upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ListProducts(context.Background(), models.ProductQuery{
		DescriptionLength: 100,
		Skip:              10,
	})

	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Empty(t, got)
}

func TestListProducts_UpstreamFailureSkipsFiltering(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	provider.EXPECT().
		Products(gomock.Any()).
		Return(nil, upstream.Status(http.StatusServiceUnavailable), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ListProducts(context.Background(), models.ProductQuery{DescriptionLength: 100})

	require.NoError(t, err)
	assert.False(t, status.Success())
	assert.Equal(t, upstream.Status(http.StatusServiceUnavailable), status)
	assert.Nil(t, got)
}

func TestListProducts_TransportErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	provider.EXPECT().
		Products(gomock.Any()).
		Return(nil, upstream.Status(0), assert.AnError)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	_, _, err := svc.ListProducts(context.Background(), models.ProductQuery{DescriptionLength: 100})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestListByCategoryAndPrice_PriceWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	beauty := []models.Product{
		{ID: 1, Title: "Mascara", Price: 9.99, Category: "beauty"},
		{ID: 2, Title: "Eyeshadow", Price: 14.50, Category: "beauty"},
		{ID: 3, Title: "Powder", Price: 19.99, Category: "beauty"},
		{ID: 4, Title: "Serum", Price: 24.00, Category: "beauty"},
		{ID: 5, Title: "Sampler", Price: 15.00, Category: "fragrances"},
	}
	provider.EXPECT().
		Categories(gomock.Any()).
		Return([]string{"beauty", "fragrances", "furniture"}, upstream.Status(http.StatusOK), nil)
	provider.EXPECT().
		ProductsByCategory(gomock.Any(), "beauty").
		Return(beauty, upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ListByCategoryAndPrice(context.Background(), models.CategoryQuery{
		Category: "beauty",
		MinPrice: 10,
		MaxPrice: 20,
	})

	require.NoError(t, err)
	assert.True(t, status.Success())
	// Out-of-window prices and the stray foreign-category record are
	// dropped; boundaries are inclusive.
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestListByCategoryAndPrice_ZeroMaxPriceMeansUnbounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	beauty := []models.Product{
		{ID: 1, Price: 5, Category: "beauty"},
		{ID: 2, Price: 5000, Category: "beauty"},
	}
	provider.EXPECT().
		Categories(gomock.Any()).
		Return([]string{"beauty"}, upstream.Status(http.StatusOK), nil)
	provider.EXPECT().
		ProductsByCategory(gomock.Any(), "beauty").
		Return(beauty, upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, _, err := svc.ListByCategoryAndPrice(context.Background(), models.CategoryQuery{
		Category: "beauty",
		MinPrice: 0,
		MaxPrice: 0,
	})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListByCategoryAndPrice_UnknownCategoryShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	// Only the category list is fetched. No ProductsByCategory EXPECT:
	// a category-scoped call would fail the controller.
	provider.EXPECT().
		Categories(gomock.Any()).
		Return([]string{"beauty", "fragrances"}, upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ListByCategoryAndPrice(context.Background(), models.CategoryQuery{
		Category: "spaceships",
	})

	require.NoError(t, err)
	assert.Equal(t, upstream.Status(http.StatusNotFound), status)
	assert.Nil(t, got)
}

func TestListByCategoryAndPrice_CategoryListFailureShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	provider.EXPECT().
		Categories(gomock.Any()).
		Return(nil, upstream.Status(http.StatusBadGateway), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	_, status, err := svc.ListByCategoryAndPrice(context.Background(), models.CategoryQuery{
		Category: "beauty",
	})

	require.NoError(t, err)
	assert.Equal(t, upstream.Status(http.StatusNotFound), status)
}

func TestProductByID_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	want := models.Product{ID: 7, Title: "Desk Lamp", Price: 49.90, Category: "furniture"}
	provider.EXPECT().
		ProductByID(gomock.Any(), 7).
		Return(want, upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.ProductByID(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Equal(t, want, got)
}

func TestSearchByName_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCatalogProvider(ctrl)

	want := []models.Product{{ID: 1, Title: "Red Phone"}}
	provider.EXPECT().
		SearchProducts(gomock.Any(), "phone").
		Return(want, upstream.Status(http.StatusOK), nil)

	svc := NewCatalogService(provider, NopObserver{}, logger.Nop())
	got, status, err := svc.SearchByName(context.Background(), "phone")

	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Equal(t, want, got)
}
