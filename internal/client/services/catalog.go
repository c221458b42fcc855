// Package services implements the client-side stores behind the CLI views:
// the catalog, the cart and the offer negotiation list. Each store owns a
// snapshot of remote state and refreshes it wholesale after mutations rather
// than patching locally.
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/currency"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/logging"
)

// CatalogService holds the current listing snapshot and answers filter
// queries against it.
type CatalogService struct {
	client api.Client
	rates  *currency.Cache
	log    logging.Logger

	cameras []models.Camera
}

func NewCatalogService(client api.Client, rates *currency.Cache, log logging.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		rates:  rates,
		log:    log.With("component", "catalog"),
	}
}

// Refresh replaces the snapshot with the server's listing set and warms the
// rate cache for every currency that appears in it. A rate warm-up failure
// is logged and tolerated; the affected prices simply render unconverted.
func (s *CatalogService) Refresh(ctx context.Context) error {
	cameras, err := s.client.ListCameras(ctx)
	if err != nil {
		return err
	}
	s.cameras = cameras

	seen := make(map[string]struct{})
	for _, c := range cameras {
		code := strings.ToUpper(c.Currency)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		if err := s.rates.Warm(ctx, code); err != nil {
			s.log.Warn(ctx, "rate warm-up failed", "base", code, "error", err)
		}
	}
	return nil
}

// Cameras returns the current snapshot.
func (s *CatalogService) Cameras() []models.Camera {
	return s.cameras
}

// Find looks a listing up by id in the snapshot.
func (s *CatalogService) Find(id uuid.UUID) (models.Camera, bool) {
	for _, c := range s.cameras {
		if c.ID == id {
			return c, true
		}
	}
	return models.Camera{}, false
}

// Filter narrows the snapshot by category facet and title search term.
// Category "all" (any case) matches every listing, otherwise the listing
// brand must match exactly. The term is a case-insensitive substring match
// on the title; empty matches everything. Filter never mutates the snapshot
// and applying it twice with the same arguments yields the same result.
func (s *CatalogService) Filter(category, term string) []models.Camera {
	term = strings.ToLower(strings.TrimSpace(term))
	all := strings.EqualFold(category, "all") || category == ""

	out := make([]models.Camera, 0, len(s.cameras))
	for _, c := range s.cameras {
		if !all && c.Brand != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.Title), term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Categories returns the distinct brand facets present in the snapshot, in
// first-seen order, prefixed with "all".
func (s *CatalogService) Categories() []string {
	out := []string{"all"}
	seen := make(map[string]struct{})
	for _, c := range s.cameras {
		if c.Brand == "" {
			continue
		}
		if _, ok := seen[c.Brand]; ok {
			continue
		}
		seen[c.Brand] = struct{}{}
		out = append(out, c.Brand)
	}
	return out
}

// CreateListing validates and creates a listing, then refreshes the snapshot.
// Admin only; the server rejects the call for everyone else.
func (s *CatalogService) CreateListing(ctx context.Context, draft models.CameraDraft) (models.Camera, error) {
	if err := draft.Validate(); err != nil {
		return models.Camera{}, err
	}
	created, err := s.client.CreateCamera(ctx, draft)
	if err != nil {
		return models.Camera{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "catalog refresh after create failed", "error", err)
	}
	return created, nil
}

// UpdateListing validates and applies a partial update, then refreshes.
func (s *CatalogService) UpdateListing(ctx context.Context, id uuid.UUID, patch models.CameraPatch) (models.Camera, error) {
	if err := patch.Validate(); err != nil {
		return models.Camera{}, err
	}
	updated, err := s.client.UpdateCamera(ctx, id, patch)
	if err != nil {
		return models.Camera{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "catalog refresh after update failed", "error", err)
	}
	return updated, nil
}

// DeleteListing removes a listing, then refreshes.
func (s *CatalogService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := s.client.DeleteCamera(ctx, id); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "catalog refresh after delete failed", "error", err)
	}
	return nil
}
