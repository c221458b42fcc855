// Package apitest provides a configurable api.Client fake for unit tests.
package apitest

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/netx"
)

// ErrNotStubbed is returned by any Fake method whose function field is unset.
var ErrNotStubbed = errors.New("apitest: method not stubbed")

// Fake implements api.Client through per-method function fields. Only the
// methods a test exercises need stubbing; everything else fails loudly with
// ErrNotStubbed. Token records the last SetToken value.
type Fake struct {
	Token string
	Base  string

	RegisterFn       func(ctx context.Context, name, email string, password []byte) (models.User, error)
	LoginFn          func(ctx context.Context, email string, password []byte) (api.Session, error)
	LogoutFn         func(ctx context.Context) error
	MeFn             func(ctx context.Context) (models.User, error)
	ListCamerasFn    func(ctx context.Context) ([]models.Camera, error)
	CreateCameraFn   func(ctx context.Context, draft models.CameraDraft) (models.Camera, error)
	UpdateCameraFn   func(ctx context.Context, id uuid.UUID, patch models.CameraPatch) (models.Camera, error)
	DeleteCameraFn   func(ctx context.Context, id uuid.UUID) error
	MyOffersFn       func(ctx context.Context) ([]models.Offer, error)
	AdminOffersFn    func(ctx context.Context) ([]models.Offer, error)
	SubmitOfferFn    func(ctx context.Context, draft models.OfferDraft, gallery []string) (models.Offer, error)
	DecideOfferFn    func(ctx context.Context, id uuid.UUID, decision models.OfferDecision) (models.Offer, error)
	CartFn           func(ctx context.Context) ([]models.CartItem, error)
	AddToCartFn      func(ctx context.Context, cameraID uuid.UUID) (models.CartItem, error)
	RemoveFromCartFn func(ctx context.Context, cameraID uuid.UUID) error
	CheckoutFn       func(ctx context.Context) (api.CheckoutResult, error)
	UploadMediaFn    func(ctx context.Context, files []netx.NamedFile) ([]api.StoredFile, error)
	CurrencyRatesFn  func(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error)
}

var _ api.Client = (*Fake)(nil)

func (f *Fake) SetToken(token string) { f.Token = token }

func (f *Fake) BaseURL() string {
	if f.Base == "" {
		return "http://localhost:8000"
	}
	return f.Base
}

func (f *Fake) Register(ctx context.Context, name, email string, password []byte) (models.User, error) {
	if f.RegisterFn == nil {
		return models.User{}, ErrNotStubbed
	}
	return f.RegisterFn(ctx, name, email, password)
}

func (f *Fake) Login(ctx context.Context, email string, password []byte) (api.Session, error) {
	if f.LoginFn == nil {
		return api.Session{}, ErrNotStubbed
	}
	return f.LoginFn(ctx, email, password)
}

func (f *Fake) Logout(ctx context.Context) error {
	if f.LogoutFn == nil {
		return ErrNotStubbed
	}
	return f.LogoutFn(ctx)
}

func (f *Fake) Me(ctx context.Context) (models.User, error) {
	if f.MeFn == nil {
		return models.User{}, ErrNotStubbed
	}
	return f.MeFn(ctx)
}

func (f *Fake) ListCameras(ctx context.Context) ([]models.Camera, error) {
	if f.ListCamerasFn == nil {
		return nil, ErrNotStubbed
	}
	return f.ListCamerasFn(ctx)
}

func (f *Fake) CreateCamera(ctx context.Context, draft models.CameraDraft) (models.Camera, error) {
	if f.CreateCameraFn == nil {
		return models.Camera{}, ErrNotStubbed
	}
	return f.CreateCameraFn(ctx, draft)
}

func (f *Fake) UpdateCamera(ctx context.Context, id uuid.UUID, patch models.CameraPatch) (models.Camera, error) {
	if f.UpdateCameraFn == nil {
		return models.Camera{}, ErrNotStubbed
	}
	return f.UpdateCameraFn(ctx, id, patch)
}

func (f *Fake) DeleteCamera(ctx context.Context, id uuid.UUID) error {
	if f.DeleteCameraFn == nil {
		return ErrNotStubbed
	}
	return f.DeleteCameraFn(ctx, id)
}

func (f *Fake) MyOffers(ctx context.Context) ([]models.Offer, error) {
	if f.MyOffersFn == nil {
		return nil, ErrNotStubbed
	}
	return f.MyOffersFn(ctx)
}

func (f *Fake) AdminOffers(ctx context.Context) ([]models.Offer, error) {
	if f.AdminOffersFn == nil {
		return nil, ErrNotStubbed
	}
	return f.AdminOffersFn(ctx)
}

func (f *Fake) SubmitOffer(ctx context.Context, draft models.OfferDraft, gallery []string) (models.Offer, error) {
	if f.SubmitOfferFn == nil {
		return models.Offer{}, ErrNotStubbed
	}
	return f.SubmitOfferFn(ctx, draft, gallery)
}

func (f *Fake) DecideOffer(ctx context.Context, id uuid.UUID, decision models.OfferDecision) (models.Offer, error) {
	if f.DecideOfferFn == nil {
		return models.Offer{}, ErrNotStubbed
	}
	return f.DecideOfferFn(ctx, id, decision)
}

func (f *Fake) Cart(ctx context.Context) ([]models.CartItem, error) {
	if f.CartFn == nil {
		return nil, ErrNotStubbed
	}
	return f.CartFn(ctx)
}

func (f *Fake) AddToCart(ctx context.Context, cameraID uuid.UUID) (models.CartItem, error) {
	if f.AddToCartFn == nil {
		return models.CartItem{}, ErrNotStubbed
	}
	return f.AddToCartFn(ctx, cameraID)
}

func (f *Fake) RemoveFromCart(ctx context.Context, cameraID uuid.UUID) error {
	if f.RemoveFromCartFn == nil {
		return ErrNotStubbed
	}
	return f.RemoveFromCartFn(ctx, cameraID)
}

func (f *Fake) Checkout(ctx context.Context) (api.CheckoutResult, error) {
	if f.CheckoutFn == nil {
		return api.CheckoutResult{}, ErrNotStubbed
	}
	return f.CheckoutFn(ctx)
}

func (f *Fake) UploadMedia(ctx context.Context, files []netx.NamedFile) ([]api.StoredFile, error) {
	if f.UploadMediaFn == nil {
		return nil, ErrNotStubbed
	}
	return f.UploadMediaFn(ctx, files)
}

func (f *Fake) CurrencyRates(ctx context.Context, base string, symbols []string) ([]api.CurrencyQuote, error) {
	if f.CurrencyRatesFn == nil {
		return nil, ErrNotStubbed
	}
	return f.CurrencyRatesFn(ctx, base, symbols)
}
