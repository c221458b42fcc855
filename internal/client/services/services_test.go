package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/api/apitest"
	"github.com/Jtanchezz/GeneralStore/internal/client/config"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/client/repositories/metadata"
	"github.com/Jtanchezz/GeneralStore/internal/client/session"
	"github.com/Jtanchezz/GeneralStore/internal/logging"
)

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: make(map[string][]byte)} }

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error) { return m.data[key], nil }

func (m *memRepo) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memRepo) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memRepo) Clear(ctx context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

func (m *memRepo) Update(ctx context.Context, fn func(ctx context.Context, r metadata.Repository) error) error {
	return fn(ctx, m)
}

var _ metadata.Repository = (*memRepo)(nil)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// newSession returns a session store, authenticated when user is non-nil.
func newSession(t *testing.T, client *apitest.Fake, user *models.User) *session.Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	store := session.NewStore(client, newMemRepo(), cfg, testLogger())

	if user != nil {
		prevLogin := client.LoginFn
		client.LoginFn = func(ctx context.Context, email string, password []byte) (api.Session, error) {
			return api.Session{Token: "test-token", User: *user}, nil
		}
		_, err := store.Authenticate(context.Background(), user.Email, []byte("irrelevant"))
		require.NoError(t, err)
		client.LoginFn = prevLogin
	}
	return store
}
