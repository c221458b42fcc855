// Package session manages the client's authentication lifecycle: login,
// registration, credential persistence, startup resume and logout. The
// session credential lives in the local metadata store so an interrupted
// client can pick its session back up; validity is always decided by the
// server, never by a local clock.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/config"
	"github.com/Jtanchezz/GeneralStore/internal/client/currency"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/client/repositories/metadata"
	"github.com/Jtanchezz/GeneralStore/internal/common"
	"github.com/Jtanchezz/GeneralStore/internal/logging"
)

// Store tracks the current authenticated user and display currency.
// It is used from the single REPL goroutine.
type Store struct {
	client api.Client
	meta   metadata.Repository
	log    logging.Logger

	locale            string
	operatingCurrency string

	user            *models.User
	displayCurrency string
	resumed         bool
	expiresIn       int
}

func NewStore(client api.Client, meta metadata.Repository, cfg *config.Config, log logging.Logger) *Store {
	s := &Store{
		client:            client,
		meta:              meta,
		log:               log.With("component", "session"),
		locale:            cfg.Locale,
		operatingCurrency: strings.ToUpper(cfg.OperatingCurrency),
	}
	s.displayCurrency = s.defaultDisplayCurrency()
	return s
}

func (s *Store) defaultDisplayCurrency() string {
	if guess := currency.GuessForLocale(s.locale); guess != "" {
		return guess
	}
	return s.operatingCurrency
}

// Authenticate logs in with the given credentials, persists the session
// token and installs it on the API client. The password bytes are wiped
// before returning.
func (s *Store) Authenticate(ctx context.Context, email string, password []byte) (models.User, error) {
	defer common.WipeByteArray(password)

	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	s.client.SetToken(sess.Token)

	err = s.meta.Update(ctx, func(ctx context.Context, repo metadata.Repository) error {
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.LastEmailKey, []byte(email))
	})
	if err != nil {
		// the session still works for this run, it just won't survive a restart
		s.log.Warn(ctx, "failed to persist session token", "error", err)
	}

	s.establish(sess.User)
	s.expiresIn = sess.ExpiresInSeconds
	s.log.Info(ctx, "authenticated", "user", sess.User.Email, "admin", sess.User.IsAdmin,
		"expires_in_seconds", sess.ExpiresInSeconds)
	return sess.User, nil
}

// Register creates an account and immediately authenticates it, so a fresh
// registration lands in a live session without a second credential prompt.
func (s *Store) Register(ctx context.Context, name, email string, password []byte) (models.User, error) {
	if _, err := s.client.Register(ctx, name, email, password); err != nil {
		common.WipeByteArray(password)
		return models.User{}, err
	}
	return s.Authenticate(ctx, email, password)
}

// Resume restores the persisted session, if any. It is attempted at most
// once per process run. A missing credential yields common.ErrAuthRequired;
// a credential the server rejects is deleted and yields
// common.ErrSessionExpired. Transient failures leave the stored credential
// in place for the next run.
func (s *Store) Resume(ctx context.Context) (models.User, error) {
	if s.resumed {
		if s.user != nil {
			return *s.user, nil
		}
		return models.User{}, common.ErrAuthRequired
	}
	s.resumed = true

	token, err := s.meta.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return models.User{}, err
	}
	if len(token) == 0 {
		return models.User{}, common.ErrAuthRequired
	}

	s.client.SetToken(string(token))
	user, err := s.client.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.client.SetToken("")
			if derr := s.meta.Delete(ctx, common.SessionTokenKey); derr != nil {
				s.log.Warn(ctx, "failed to drop stale session token", "error", derr)
			}
			return models.User{}, common.ErrSessionExpired
		}
		s.client.SetToken("")
		return models.User{}, err
	}

	s.establish(user)
	s.log.Info(ctx, "session resumed", "user", user.Email, "admin", user.IsAdmin)
	return user, nil
}

// EndSession logs out and clears all session state. The remote logout is
// best effort; local state is cleared regardless of its outcome.
func (s *Store) EndSession(ctx context.Context) {
	if s.user != nil {
		if err := s.client.Logout(ctx); err != nil {
			s.log.Warn(ctx, "remote logout failed", "error", err)
		}
	}
	s.client.SetToken("")
	if err := s.meta.Delete(ctx, common.SessionTokenKey); err != nil {
		s.log.Warn(ctx, "failed to delete session token", "error", err)
	}
	s.user = nil
	s.expiresIn = 0
	s.displayCurrency = s.defaultDisplayCurrency()
}

func (s *Store) establish(user models.User) {
	u := user
	s.user = &u
	s.resumed = true
	if pref := strings.ToUpper(strings.TrimSpace(user.PreferredCurrency)); pref != "" {
		s.displayCurrency = pref
	}
}

// LastEmail returns the email of the last successful login, or "". It is
// kept across logout so the login prompt can be prefilled.
func (s *Store) LastEmail(ctx context.Context) string {
	v, err := s.meta.Get(ctx, common.LastEmailKey)
	if err != nil {
		return ""
	}
	return string(v)
}

// CurrentUser returns the authenticated profile, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) Authenticated() bool { return s.user != nil }

// SessionTTLSeconds is the informational lifetime reported at login, zero
// when unknown (resumed sessions) or logged out. Expiry itself is decided by
// the server; no client timer is derived from this.
func (s *Store) SessionTTLSeconds() int { return s.expiresIn }

func (s *Store) IsAdmin() bool { return s.user != nil && s.user.IsAdmin }

// DisplayCurrency is the currency prices are rendered in. It defaults from
// the profile preference, then the locale, then the operating currency.
func (s *Store) DisplayCurrency() string { return s.displayCurrency }

// SetDisplayCurrency switches the render currency for this session only.
func (s *Store) SetDisplayCurrency(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != "" {
		s.displayCurrency = code
	}
}

// OperatingCurrency is the fixed currency offers and listings are authored
// in. Changing the display currency never changes it.
func (s *Store) OperatingCurrency() string { return s.operatingCurrency }
