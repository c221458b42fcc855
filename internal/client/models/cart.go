package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one saved line in the authenticated user's cart. The backend
// keeps at most one row per (user, listing) pair.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	Camera    Camera    `json:"camera"`
	CreatedAt time.Time `json:"created_at"`
}
