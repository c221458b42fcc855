package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
)

// Session is the credential envelope returned by login. Expiry is
// server-authoritative; ExpiresInSeconds is informational only.
type Session struct {
	Token            string      `json:"token"`
	User             models.User `json:"user"`
	ExpiresInSeconds int         `json:"expires_in_seconds"`
}

// StoredFile is one uploaded media reference returned by the upload endpoint.
type StoredFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// CheckoutResult reports how many cart lines the server converted into a
// purchase.
type CheckoutResult struct {
	Detail string `json:"detail"`
	Count  int    `json:"count"`
}

// CurrencyQuote is one base→quote conversion rate row.
type CurrencyQuote struct {
	BaseCurrency  string    `json:"base_currency"`
	QuoteCurrency string    `json:"quote_currency"`
	Rate          float64   `json:"rate"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type cameraListResponse struct {
	Items []models.Camera `json:"items"`
}

type createCameraRequest struct {
	Title        string   `json:"title"`
	Brand        string   `json:"brand"`
	Description  string   `json:"description"`
	Condition    string   `json:"condition"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	ImagePath    string   `json:"image_path,omitempty"`
	ImageGallery []string `json:"image_gallery"`
}

type offerListResponse struct {
	Items []models.Offer `json:"items"`
}

type submitOfferRequest struct {
	CameraTitle       string   `json:"camera_title"`
	Brand             string   `json:"brand"`
	Condition         string   `json:"condition"`
	AskingPrice       float64  `json:"asking_price"`
	PreferredCurrency string   `json:"preferred_currency"`
	Notes             string   `json:"notes"`
	ImageGallery      []string `json:"image_gallery"`
}

type offerDecisionRequest struct {
	Action        string   `json:"action"`
	CounterAmount *float64 `json:"counter_amount,omitempty"`
}

type addToCartRequest struct {
	CameraID uuid.UUID `json:"camera_id"`
}

type uploadResponse struct {
	Files []StoredFile `json:"files"`
}

type currencyQuoteResponse struct {
	Quotes []CurrencyQuote `json:"quotes"`
}
