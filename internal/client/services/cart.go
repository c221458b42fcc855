package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/currency"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/client/session"
	"github.com/Jtanchezz/GeneralStore/internal/common"
	"github.com/Jtanchezz/GeneralStore/internal/logging"
)

// CartService mirrors the server-side cart for the authenticated user.
// The server deduplicates lines per listing, so adding an item twice is a
// no-op there; the snapshot reflects whatever it returns.
type CartService struct {
	client  api.Client
	session *session.Store
	catalog *CatalogService
	rates   *currency.Cache
	log     logging.Logger

	items []models.CartItem
}

func NewCartService(client api.Client, sess *session.Store, catalog *CatalogService, rates *currency.Cache, log logging.Logger) *CartService {
	return &CartService{
		client:  client,
		session: sess,
		catalog: catalog,
		rates:   rates,
		log:     log.With("component", "cart"),
	}
}

// Refresh replaces the cart snapshot with the server's.
func (s *CartService) Refresh(ctx context.Context) error {
	if !s.session.Authenticated() {
		s.items = nil
		return nil
	}
	items, err := s.client.Cart(ctx)
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

// Items returns the current snapshot.
func (s *CartService) Items() []models.CartItem {
	return s.items
}

// Add puts an available listing in the cart. It needs a session and rejects
// listings the catalog knows to be reserved or sold without contacting the
// server.
func (s *CartService) Add(ctx context.Context, cameraID uuid.UUID) error {
	if !s.session.Authenticated() {
		return common.ErrAuthRequired
	}
	if cam, ok := s.catalog.Find(cameraID); ok && !cam.Available() {
		return fmt.Errorf("%w: %q is %s", common.ErrValidation, cam.Title, cam.Status)
	}
	if _, err := s.client.AddToCart(ctx, cameraID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Remove drops a listing from the cart.
func (s *CartService) Remove(ctx context.Context, cameraID uuid.UUID) error {
	if !s.session.Authenticated() {
		return common.ErrAuthRequired
	}
	if err := s.client.RemoveFromCart(ctx, cameraID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Checkout converts the cart into a purchase, then re-fetches both the cart
// and the catalog; listings just sold must show their new status rather
// than a locally guessed one.
func (s *CartService) Checkout(ctx context.Context) (api.CheckoutResult, error) {
	if !s.session.Authenticated() {
		return api.CheckoutResult{}, common.ErrAuthRequired
	}
	result, err := s.client.Checkout(ctx)
	if err != nil {
		return api.CheckoutResult{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "cart refresh after checkout failed", "error", err)
	}
	if err := s.catalog.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "catalog refresh after checkout failed", "error", err)
	}
	return result, nil
}

// Total sums the cart in the given display currency. A line whose rate is
// not cached contributes zero; the total is best-effort and never fails.
func (s *CartService) Total(displayCurrency string) float64 {
	var total float64
	for _, item := range s.items {
		converted, ok := s.rates.Convert(item.Camera.Price, item.Camera.Currency, displayCurrency)
		if !ok {
			continue
		}
		total += converted
	}
	return total
}
