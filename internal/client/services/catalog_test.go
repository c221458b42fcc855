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
)

func testCameras() []models.Camera {
	return []models.Camera{
		{ID: uuid.New(), Title: "AE-1 Program", Brand: "Canon", Currency: "USD", Price: 250, Status: models.CameraStatusAvailable},
		{ID: uuid.New(), Title: "F3 HP", Brand: "Nikon", Currency: "USD", Price: 480, Status: models.CameraStatusAvailable},
		{ID: uuid.New(), Title: "Canonet QL17", Brand: "Canon", Currency: "MXN", Price: 3200, Status: models.CameraStatusSold},
	}
}

func newTestCatalog(t *testing.T, client *apitest.Fake) *CatalogService {
	t.Helper()
	rates := currency.NewCache(client, nil)
	return NewCatalogService(client, rates, testLogger())
}

func TestCatalogRefreshWarmsDistinctCurrencies(t *testing.T) {
	var bases []string
	client := &apitest.Fake{
		ListCamerasFn: func(ctx context.Context) ([]models.Camera, error) {
			return testCameras(), nil
		},
		CurrencyRatesFn: func(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error) {
			bases = append(bases, base)
			return nil, nil
		},
	}
	catalog := newTestCatalog(t, client)

	require.NoError(t, catalog.Refresh(context.Background()))
	assert.Len(t, catalog.Cameras(), 3)
	assert.Equal(t, []string{"USD", "MXN"}, bases, "one warm-up per distinct currency")
}

func TestCatalogRefreshToleratesRateFailure(t *testing.T) {
	client := &apitest.Fake{
		ListCamerasFn: func(ctx context.Context) ([]models.Camera, error) {
			return testCameras(), nil
		},
		CurrencyRatesFn: func(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error) {
			return nil, api.ErrUnavailable
		},
	}
	catalog := newTestCatalog(t, client)

	require.NoError(t, catalog.Refresh(context.Background()))
	assert.Len(t, catalog.Cameras(), 3)
}

func TestCatalogFilter(t *testing.T) {
	catalog := newTestCatalog(t, &apitest.Fake{})
	catalog.cameras = testCameras()

	assert.Len(t, catalog.Filter("all", ""), 3)
	assert.Len(t, catalog.Filter("ALL", ""), 3)
	assert.Len(t, catalog.Filter("", ""), 3)

	canon := catalog.Filter("Canon", "")
	require.Len(t, canon, 2)
	assert.Equal(t, "AE-1 Program", canon[0].Title)

	// substring match on the title is case-insensitive
	got := catalog.Filter("all", "canonet")
	require.Len(t, got, 1)
	assert.Equal(t, "Canonet QL17", got[0].Title)

	assert.Empty(t, catalog.Filter("Leica", ""))
	assert.Empty(t, catalog.Filter("Canon", "F3"))

	// idempotent and non-mutating
	again := catalog.Filter("Canon", "")
	assert.Equal(t, canon, again)
	assert.Len(t, catalog.Cameras(), 3)
}

func TestCatalogCategories(t *testing.T) {
	catalog := newTestCatalog(t, &apitest.Fake{})
	catalog.cameras = testCameras()

	assert.Equal(t, []string{"all", "Canon", "Nikon"}, catalog.Categories())
}

func TestCreateListingValidatesFirst(t *testing.T) {
	called := false
	client := &apitest.Fake{
		CreateCameraFn: func(ctx context.Context, draft models.CameraDraft) (models.Camera, error) {
			called = true
			return models.Camera{}, nil
		},
	}
	catalog := newTestCatalog(t, client)

	_, err := catalog.CreateListing(context.Background(), models.CameraDraft{Title: "no brand"})
	assert.Error(t, err)
	assert.False(t, called, "invalid draft must not reach the server")
}

func TestUpdateListingRefreshesSnapshot(t *testing.T) {
	cams := testCameras()
	title := "New title"
	client := &apitest.Fake{
		UpdateCameraFn: func(ctx context.Context, id uuid.UUID, patch models.CameraPatch) (models.Camera, error) {
			cams[0].Title = *patch.Title
			return cams[0], nil
		},
		ListCamerasFn: func(ctx context.Context) ([]models.Camera, error) {
			return cams, nil
		},
		CurrencyRatesFn: func(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error) {
			return nil, nil
		},
	}
	catalog := newTestCatalog(t, client)

	updated, err := catalog.UpdateListing(context.Background(), cams[0].ID, models.CameraPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New title", catalog.Cameras()[0].Title)
}
