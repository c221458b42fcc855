package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/netx"
)

// Client is the transport contract for the GeneralStore backend. The
// concrete implementation is HTTPClient; tests substitute fakes.
//
// Authenticated endpoints use the credential installed via SetToken.
// No method retries automatically; retry policy belongs to the caller.
type Client interface {
	// SetToken installs (or, with "", clears) the session credential sent
	// on subsequent requests.
	SetToken(token string)

	// BaseURL returns the API base address, used to resolve media paths.
	BaseURL() string

	Register(ctx context.Context, name, email string, password []byte) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)

	ListCameras(ctx context.Context) ([]models.Camera, error)
	CreateCamera(ctx context.Context, draft models.CameraDraft) (models.Camera, error)
	UpdateCamera(ctx context.Context, id uuid.UUID, patch models.CameraPatch) (models.Camera, error)
	DeleteCamera(ctx context.Context, id uuid.UUID) error

	MyOffers(ctx context.Context) ([]models.Offer, error)
	AdminOffers(ctx context.Context) ([]models.Offer, error)
	SubmitOffer(ctx context.Context, draft models.OfferDraft, gallery []string) (models.Offer, error)
	DecideOffer(ctx context.Context, id uuid.UUID, decision models.OfferDecision) (models.Offer, error)

	Cart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, cameraID uuid.UUID) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, cameraID uuid.UUID) error
	Checkout(ctx context.Context) (CheckoutResult, error)

	UploadMedia(ctx context.Context, files []netx.NamedFile) ([]StoredFile, error)

	CurrencyRates(ctx context.Context, base string, symbols []string) ([]CurrencyQuote, error)
}
