package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/common"
)

// OfferStatus is the negotiation state of an offer.
//
// Transitions: pending → countered → {accepted, declined}, or pending
// directly to a terminal state. Terminal offers are never re-opened by the
// client; the server rejects further decisions on them.
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusDeclined  OfferStatus = "declined"
	OfferStatusCountered OfferStatus = "countered"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusDeclined, OfferStatusCountered:
		return true
	}
	return false
}

// Terminal reports whether the status ends the negotiation.
func (s OfferStatus) Terminal() bool {
	switch s {
	case OfferStatusAccepted, OfferStatusDeclined:
		return true
	case OfferStatusPending, OfferStatusCountered:
		return false
	}
	return false
}

// Offer is a seller's proposal to sell an item to the platform. Offers are
// always authored in the operating currency; PreferredCurrency records it.
type Offer struct {
	ID                uuid.UUID   `json:"id"`
	CameraTitle       string      `json:"camera_title"`
	Brand             string      `json:"brand"`
	Condition         string      `json:"condition"`
	AskingPriceCents  int64       `json:"asking_price_cents"`
	PreferredCurrency string      `json:"preferred_currency"`
	Notes             string      `json:"notes"`
	ImageGallery      []string    `json:"image_gallery"`
	Status            OfferStatus `json:"status"`
	CounterOfferCents *int64      `json:"counter_offer_cents"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OfferDraft is a submission before the image gallery has been uploaded.
type OfferDraft struct {
	CameraTitle string
	Brand       string
	Condition   Condition
	AskingPrice float64
	Notes       string
}

// Validate checks everything except the gallery, which only exists after
// the media upload step.
func (d OfferDraft) Validate() error {
	if d.CameraTitle == "" {
		return fmt.Errorf("%w: camera title is required", common.ErrValidation)
	}
	if d.Brand == "" {
		return fmt.Errorf("%w: brand is required", common.ErrValidation)
	}
	if !d.Condition.Valid() {
		return fmt.Errorf("%w: unknown condition %q", common.ErrValidation, d.Condition)
	}
	if d.AskingPrice <= 0 {
		return fmt.Errorf("%w: asking price must be positive", common.ErrValidation)
	}
	if len(d.Notes) == 0 || len(d.Notes) > 500 {
		return fmt.Errorf("%w: notes must be 1-500 characters", common.ErrValidation)
	}
	return nil
}

// DecisionAction is the admin's (or submitter's) verdict on an offer.
type DecisionAction string

const (
	DecisionAccept  DecisionAction = "accepted"
	DecisionDecline DecisionAction = "declined"
	DecisionCounter DecisionAction = "countered"
)

// OfferDecision is a decision request. CounterAmount is only meaningful for
// DecisionCounter.
type OfferDecision struct {
	Action        DecisionAction
	CounterAmount float64
}

// Validate rejects malformed decisions before any request is sent:
// the action must be one of the three verdicts, and a counter must carry a
// positive amount.
func (d OfferDecision) Validate() error {
	switch d.Action {
	case DecisionAccept, DecisionDecline:
		return nil
	case DecisionCounter:
		if d.CounterAmount <= 0 {
			return fmt.Errorf("%w: counter amount must be positive", common.ErrValidation)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown action %q", common.ErrValidation, d.Action)
	}
}
