package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/common"
)

// CameraStatus is the lifecycle state of a listing. The set is closed;
// consumers switch over it exhaustively so an unknown status coming off the
// wire is surfaced instead of silently falling through.
type CameraStatus string

const (
	CameraStatusAvailable CameraStatus = "available"
	CameraStatusReserved  CameraStatus = "reserved"
	CameraStatusSold      CameraStatus = "sold"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s CameraStatus) Valid() bool {
	switch s {
	case CameraStatusAvailable, CameraStatusReserved, CameraStatusSold:
		return true
	}
	return false
}

// Condition grades a second-hand item.
type Condition string

const (
	ConditionNew       Condition = "New"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionRough     Condition = "Rough"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionRough:
		return true
	}
	return false
}

// Camera is a sellable listing. Prices are carried in cents; Price is the
// server-computed decimal convenience value.
type Camera struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Brand        string       `json:"brand"`
	Description  string       `json:"description"`
	Condition    string       `json:"condition"`
	PriceCents   int64        `json:"price_cents"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	Status       CameraStatus `json:"status"`
	ImagePath    string       `json:"image_path"`
	ImageGallery []string     `json:"image_gallery"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	SoldAt       *time.Time   `json:"sold_at"`
}

// Available reports whether the listing can still be added to a cart.
func (c Camera) Available() bool {
	return c.Status == CameraStatusAvailable
}

// Gallery folds the legacy single-image field into the ordered gallery.
func (c Camera) Gallery() *Gallery {
	return NewGallery(c.ImagePath, c.ImageGallery)
}

// CameraDraft is the payload for creating a listing. The price is decimal
// here and converted to cents at the gateway boundary.
type CameraDraft struct {
	Title        string
	Brand        string
	Description  string
	Condition    Condition
	Price        float64
	Currency     string
	ImagePath    string
	ImageGallery []string
}

// Validate applies the client-side rules the server will enforce anyway:
// required fields, a known condition grade, and a positive price.
func (d CameraDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if d.Brand == "" {
		return fmt.Errorf("%w: brand is required", common.ErrValidation)
	}
	if !d.Condition.Valid() {
		return fmt.Errorf("%w: unknown condition %q", common.ErrValidation, d.Condition)
	}
	if d.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrValidation)
	}
	return nil
}

// CameraPatch is a partial update; nil fields are left untouched server-side.
type CameraPatch struct {
	Title        *string       `json:"title,omitempty"`
	Brand        *string       `json:"brand,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Condition    *string       `json:"condition,omitempty"`
	Price        *float64      `json:"price,omitempty"`
	Status       *CameraStatus `json:"status,omitempty"`
	Currency     *string       `json:"currency,omitempty"`
	ImagePath    *string       `json:"image_path,omitempty"`
	ImageGallery *[]string     `json:"image_gallery,omitempty"`
}

// Validate rejects patches that would fail server validation outright.
func (p CameraPatch) Validate() error {
	if p.Price != nil && *p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrValidation)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, *p.Status)
	}
	return nil
}
