// Package models defines client-side data models for the GeneralStore CLI.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated profile returned by the backend.
// IsAdmin is server-assigned and never changed by the client.
type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	IsAdmin           bool      `json:"is_admin"`
	PreferredCurrency string    `json:"preferred_currency"`
	CreatedAt         time.Time `json:"created_at"`
}
