package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/common"
	"github.com/Jtanchezz/GeneralStore/internal/logging"
	"github.com/Jtanchezz/GeneralStore/internal/netx"
)

// maxResponseBytes caps response bodies; nothing the backend returns comes
// close to this.
const maxResponseBytes = 1 << 20

// HTTPClient talks JSON (and multipart, for media) to the backend over a
// single base URL. It holds the active session token and attaches it to
// every request; persistence of the token is the session store's job.
type HTTPClient struct {
	baseURL           string
	operatingCurrency string
	http              *http.Client
	log               logging.Logger
	token             string
}

func NewHTTPClient(baseURL, operatingCurrency string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:           strings.TrimSuffix(baseURL, "/"),
		operatingCurrency: strings.ToUpper(operatingCurrency),
		http:              &http.Client{},
		log:               log,
	}
}

func (c *HTTPClient) SetToken(token string) { c.token = token }

func (c *HTTPClient) BaseURL() string { return c.baseURL }

// request performs one call against the backend.
//
// body handling:
//   - nil sends no body;
//   - *netx.MultipartPayload is sent unmodified with its own content type,
//     so the multipart boundary set by the builder survives;
//   - anything else is marshalled to JSON with a matching content type.
//
// A non-2xx status always returns *APIError whose Detail follows the
// backend's error shapes (see extractDetail). Decoded output goes into out
// when it is non-nil.
func (c *HTTPClient) request(ctx context.Context, method, path string, body any, out any) error {
	var (
		reader      io.Reader
		contentType string
	)

	switch b := body.(type) {
	case nil:
	case *netx.MultipartPayload:
		reader = b.Body
		contentType = b.ContentType
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return errors.Wrapf(err, "error marshalling request body for %s %s", method, path)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "error creating request for %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set(common.SessionTokenHeader, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "%s %s: %v", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn(ctx, "error closing response body", "path", path, "err", err)
		}
	}()

	data, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "error reading response body from %s %s", method, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: resp.StatusCode, Detail: extractDetail(resp.StatusCode, data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "error decoding response from %s %s, body:\n%s", method, path, string(data))
	}
	return nil
}

// extractDetail reduces an error body to a single message. The backend
// produces three shapes: plain text, {"detail": "..."} and
// {"detail": [{"msg": "..."}, ...]} for field validation; list items are
// joined with "; ".
func extractDetail(status int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(status)
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return trimmed
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Detail, &items); err != nil {
		return string(envelope.Detail)
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		var structured struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(item, &structured); err == nil && structured.Msg != "" {
			parts = append(parts, structured.Msg)
			continue
		}
		parts = append(parts, string(item))
	}
	return strings.Join(parts, "; ")
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (models.User, error) {
	var user models.User
	req := registerRequest{Name: name, Email: email, Password: string(password)}
	if err := c.request(ctx, http.MethodPost, "/auth/register", req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (Session, error) {
	var session Session
	req := loginRequest{Email: email, Password: string(password)}
	if err := c.request(ctx, http.MethodPost, "/auth/login", req, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.request(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) ListCameras(ctx context.Context) ([]models.Camera, error) {
	var resp cameraListResponse
	if err := c.request(ctx, http.MethodGet, "/cameras", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) CreateCamera(ctx context.Context, draft models.CameraDraft) (models.Camera, error) {
	currency := strings.ToUpper(draft.Currency)
	if currency == "" {
		currency = c.operatingCurrency
	}
	req := createCameraRequest{
		Title:        draft.Title,
		Brand:        draft.Brand,
		Description:  draft.Description,
		Condition:    string(draft.Condition),
		Price:        draft.Price,
		Currency:     currency,
		ImagePath:    draft.ImagePath,
		ImageGallery: draft.ImageGallery,
	}
	if req.ImageGallery == nil {
		req.ImageGallery = []string{}
	}

	var camera models.Camera
	if err := c.request(ctx, http.MethodPost, "/cameras", req, &camera); err != nil {
		return models.Camera{}, err
	}
	return camera, nil
}

func (c *HTTPClient) UpdateCamera(ctx context.Context, id uuid.UUID, patch models.CameraPatch) (models.Camera, error) {
	var camera models.Camera
	if err := c.request(ctx, http.MethodPatch, "/cameras/"+id.String(), patch, &camera); err != nil {
		return models.Camera{}, err
	}
	return camera, nil
}

func (c *HTTPClient) DeleteCamera(ctx context.Context, id uuid.UUID) error {
	return c.request(ctx, http.MethodDelete, "/cameras/"+id.String(), nil, nil)
}

func (c *HTTPClient) MyOffers(ctx context.Context) ([]models.Offer, error) {
	var resp offerListResponse
	if err := c.request(ctx, http.MethodGet, "/offers/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) AdminOffers(ctx context.Context) ([]models.Offer, error) {
	var resp offerListResponse
	if err := c.request(ctx, http.MethodGet, "/offers/admin", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// SubmitOffer creates the offer with an already-uploaded gallery. Offers are
// always authored in the operating currency regardless of the display
// currency.
func (c *HTTPClient) SubmitOffer(ctx context.Context, draft models.OfferDraft, gallery []string) (models.Offer, error) {
	req := submitOfferRequest{
		CameraTitle:       draft.CameraTitle,
		Brand:             draft.Brand,
		Condition:         string(draft.Condition),
		AskingPrice:       draft.AskingPrice,
		PreferredCurrency: c.operatingCurrency,
		Notes:             draft.Notes,
		ImageGallery:      gallery,
	}
	if req.ImageGallery == nil {
		req.ImageGallery = []string{}
	}

	var offer models.Offer
	if err := c.request(ctx, http.MethodPost, "/offers", req, &offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (c *HTTPClient) DecideOffer(ctx context.Context, id uuid.UUID, decision models.OfferDecision) (models.Offer, error) {
	req := offerDecisionRequest{Action: string(decision.Action)}
	if decision.Action == models.DecisionCounter {
		amount := decision.CounterAmount
		req.CounterAmount = &amount
	}

	var offer models.Offer
	if err := c.request(ctx, http.MethodPost, "/offers/"+id.String()+"/decision", req, &offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (c *HTTPClient) Cart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.request(ctx, http.MethodGet, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, cameraID uuid.UUID) (models.CartItem, error) {
	var item models.CartItem
	if err := c.request(ctx, http.MethodPost, "/cart", addToCartRequest{CameraID: cameraID}, &item); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, cameraID uuid.UUID) error {
	return c.request(ctx, http.MethodDelete, "/cart/"+cameraID.String(), nil, nil)
}

func (c *HTTPClient) Checkout(ctx context.Context) (CheckoutResult, error) {
	var result CheckoutResult
	if err := c.request(ctx, http.MethodPost, "/cart/checkout", nil, &result); err != nil {
		return CheckoutResult{}, err
	}
	return result, nil
}

func (c *HTTPClient) UploadMedia(ctx context.Context, files []netx.NamedFile) ([]StoredFile, error) {
	payload, err := netx.BuildFilesForm("files", files)
	if err != nil {
		return nil, err
	}

	var resp uploadResponse
	if err := c.request(ctx, http.MethodPost, "/media/upload", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

func (c *HTTPClient) CurrencyRates(ctx context.Context, base string, symbols []string) ([]CurrencyQuote, error) {
	q := url.Values{}
	q.Set("base", strings.ToUpper(base))
	q.Set("symbols", strings.ToUpper(strings.Join(symbols, ",")))

	var resp currencyQuoteResponse
	if err := c.request(ctx, http.MethodGet, "/currency/rates?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Quotes, nil
}
