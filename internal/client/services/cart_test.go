package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/api/apitest"
	"github.com/Jtanchezz/GeneralStore/internal/client/currency"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/common"
)

func newTestCart(t *testing.T, client *apitest.Fake, authenticated bool) (*CartService, *CatalogService) {
	t.Helper()

	var user *models.User
	if authenticated {
		user = &models.User{Email: "ana@example.com"}
	}
	sess := newSession(t, client, user)
	rates := currency.NewCache(client, nil)
	catalog := NewCatalogService(client, rates, testLogger())
	cart := NewCartService(client, sess, catalog, rates, testLogger())
	return cart, catalog
}

func TestCartAddRequiresSession(t *testing.T) {
	cart, _ := newTestCart(t, &apitest.Fake{}, false)

	err := cart.Add(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrAuthRequired)
}

func TestCartAddRejectsUnavailableListing(t *testing.T) {
	called := false
	client := &apitest.Fake{
		AddToCartFn: func(ctx context.Context, cameraID uuid.UUID) (models.CartItem, error) {
			called = true
			return models.CartItem{}, nil
		},
	}
	cart, catalog := newTestCart(t, client, true)
	catalog.cameras = testCameras()
	sold := catalog.cameras[2]

	err := cart.Add(context.Background(), sold.ID)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.False(t, called, "sold listing must not reach the server")
}

func TestCartAddRefreshesSnapshot(t *testing.T) {
	cams := testCameras()
	server := []models.CartItem{}
	client := &apitest.Fake{
		AddToCartFn: func(ctx context.Context, cameraID uuid.UUID) (models.CartItem, error) {
			item := models.CartItem{ID: uuid.New(), Camera: cams[0]}
			server = append(server, item)
			return item, nil
		},
		CartFn: func(ctx context.Context) ([]models.CartItem, error) {
			return server, nil
		},
	}
	cart, catalog := newTestCart(t, client, true)
	catalog.cameras = cams

	require.NoError(t, cart.Add(context.Background(), cams[0].ID))
	assert.Len(t, cart.Items(), 1)
}

func TestCheckoutRefetchesCartAndCatalog(t *testing.T) {
	cams := testCameras()
	listCalls, cartCalls := 0, 0
	client := &apitest.Fake{
		CheckoutFn: func(ctx context.Context) (api.CheckoutResult, error) {
			cams[0].Status = models.CameraStatusSold
			cams[1].Status = models.CameraStatusSold
			return api.CheckoutResult{Detail: "purchased", Count: 2}, nil
		},
		CartFn: func(ctx context.Context) ([]models.CartItem, error) {
			cartCalls++
			return nil, nil
		},
		ListCamerasFn: func(ctx context.Context) ([]models.Camera, error) {
			listCalls++
			return cams, nil
		},
		CurrencyRatesFn: func(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error) {
			return nil, nil
		},
	}
	cart, catalog := newTestCart(t, client, true)
	cart.items = []models.CartItem{
		{ID: uuid.New(), Camera: cams[0]},
		{ID: uuid.New(), Camera: cams[1]},
	}

	result, err := cart.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 1, cartCalls, "cart is re-fetched, not patched")
	assert.Equal(t, 1, listCalls, "catalog is re-fetched, not patched")
	assert.Empty(t, cart.Items())
	assert.Equal(t, models.CameraStatusSold, catalog.Cameras()[0].Status)
	assert.Equal(t, models.CameraStatusSold, catalog.Cameras()[1].Status)
}

func TestCartTotalSkipsUncachedRates(t *testing.T) {
	client := &apitest.Fake{
		CurrencyRatesFn: func(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error) {
			return []api.CurrencyQuote{
				{BaseCurrency: "USD", QuoteCurrency: "MXN", Rate: 17.5},
			}, nil
		},
	}
	cart, _ := newTestCart(t, client, true)
	require.NoError(t, cart.rates.Warm(context.Background(), "USD"))

	cart.items = []models.CartItem{
		{Camera: models.Camera{Price: 100, Currency: "USD"}},
		{Camera: models.Camera{Price: 2000, Currency: "EUR"}}, // no EUR table cached
	}

	assert.InDelta(t, 1750, cart.Total("MXN"), 1e-9)
	assert.InDelta(t, 100, cart.Total("USD"), 1e-9)
}
