package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/client/session"
	"github.com/Jtanchezz/GeneralStore/internal/common"
	"github.com/Jtanchezz/GeneralStore/internal/filex"
	"github.com/Jtanchezz/GeneralStore/internal/logging"
	"github.com/Jtanchezz/GeneralStore/internal/netx"
)

// test seam
var readFile = os.ReadFile

// OfferService manages sell-to-us negotiations: the user's own submissions
// and, for admins, the review queue.
type OfferService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger

	mine    []models.Offer
	pending []models.Offer
}

func NewOfferService(client api.Client, sess *session.Store, log logging.Logger) *OfferService {
	return &OfferService{
		client:  client,
		session: sess,
		log:     log.With("component", "offers"),
	}
}

// Refresh re-fetches the user's own offers and, for admins, the full queue.
func (s *OfferService) Refresh(ctx context.Context) error {
	if !s.session.Authenticated() {
		s.mine, s.pending = nil, nil
		return nil
	}
	mine, err := s.client.MyOffers(ctx)
	if err != nil {
		return err
	}
	s.mine = mine

	if s.session.IsAdmin() {
		pending, err := s.client.AdminOffers(ctx)
		if err != nil {
			return err
		}
		s.pending = pending
	}
	return nil
}

func (s *OfferService) Mine() []models.Offer { return s.mine }

// Pending is the admin review queue; empty for non-admins.
func (s *OfferService) Pending() []models.Offer { return s.pending }

// Submit validates the draft, uploads the local images and creates the
// offer. Non-image paths and unreadable files are skipped; unless at least
// three usable references survive both the local filter and the upload, the
// submission stops before the offer request is made.
func (s *OfferService) Submit(ctx context.Context, draft models.OfferDraft, imagePaths []string) (models.Offer, error) {
	if !s.session.Authenticated() {
		return models.Offer{}, common.ErrAuthRequired
	}
	if err := draft.Validate(); err != nil {
		return models.Offer{}, err
	}

	var files []netx.NamedFile
	for _, path := range imagePaths {
		if !filex.IsImagePath(path) {
			s.log.Debug(ctx, "skipping non-image path", "path", path)
			continue
		}
		data, err := readFile(path)
		if err != nil {
			s.log.Warn(ctx, "skipping unreadable image", "path", path, "error", err)
			continue
		}
		files = append(files, netx.NamedFile{Name: filepath.Base(path), Data: data})
	}
	if len(files) < common.MinOfferImages {
		return models.Offer{}, fmt.Errorf("%w: need at least %d images, got %d usable",
			common.ErrValidation, common.MinOfferImages, len(files))
	}

	stored, err := s.client.UploadMedia(ctx, files)
	if err != nil {
		return models.Offer{}, err
	}
	gallery := make([]string, 0, len(stored))
	for _, f := range stored {
		if f.Path != "" {
			gallery = append(gallery, f.Path)
		}
	}
	if len(gallery) < common.MinOfferImages {
		return models.Offer{}, fmt.Errorf("%w: need at least %d images, upload returned %d usable",
			common.ErrValidation, common.MinOfferImages, len(gallery))
	}

	offer, err := s.client.SubmitOffer(ctx, draft, gallery)
	if err != nil {
		return models.Offer{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "offer refresh after submit failed", "error", err)
	}
	return offer, nil
}

// Decide applies a verdict to an offer. The decision itself is validated
// before any request goes out; whether the offer can still be decided is the
// server's call. On success the lists are re-fetched rather than patched.
func (s *OfferService) Decide(ctx context.Context, id uuid.UUID, action models.DecisionAction, counterAmount float64) (models.Offer, error) {
	if !s.session.Authenticated() {
		return models.Offer{}, common.ErrAuthRequired
	}
	decision := models.OfferDecision{Action: action, CounterAmount: counterAmount}
	if err := decision.Validate(); err != nil {
		return models.Offer{}, err
	}

	offer, err := s.client.DecideOffer(ctx, id, decision)
	if err != nil {
		return models.Offer{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "offer refresh after decision failed", "error", err)
	}
	return offer, nil
}
