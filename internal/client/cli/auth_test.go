package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/api/apitest"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/common"
)

// stubInput replaces the interactive input seams with canned answers.
func stubInput(t *testing.T, answers []string, password []byte) {
	t.Helper()

	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt: %q", prompt)
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
}

func TestLoginCommand(t *testing.T) {
	client := &apitest.Fake{
		LoginFn: func(ctx context.Context, email string, password []byte) (api.Session, error) {
			assert.Equal(t, "ana@example.com", email)
			return api.Session{
				Token:            "tok",
				User:             models.User{Name: "Ana", Email: email},
				ExpiresInSeconds: 1209600,
			}, nil
		},
		CartFn:     func(ctx context.Context) ([]models.CartItem, error) { return nil, nil },
		MyOffersFn: func(ctx context.Context) ([]models.Offer, error) { return nil, nil },
	}
	app := newTestApp(t, client)
	app.view = ViewLogin
	stubInput(t, []string{"ana@example.com"}, []byte("hunter2secret"))

	require.NoError(t, app.Login(context.Background()))

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, ViewHome, app.view)
	msg, ok := app.notice.Current()
	require.True(t, ok)
	assert.Equal(t, "Welcome back, Ana! Session valid for 14 days.", msg)
}

func TestRegisterCommandValidatesBeforeRequest(t *testing.T) {
	called := false
	client := &apitest.Fake{
		RegisterFn: func(ctx context.Context, name, email string, password []byte) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	app := newTestApp(t, client)

	stubInput(t, []string{"A", "ana@example.com"}, []byte("longenoughpw"))
	err := app.Register(context.Background())
	assert.ErrorIs(t, err, common.ErrValidation)

	stubInput(t, []string{"Ana", "ana@example.com"}, []byte("short"))
	err = app.Register(context.Background())
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.False(t, called, "invalid input must not reach the server")
}

func TestRegisterCommandChainsLogin(t *testing.T) {
	client := &apitest.Fake{
		RegisterFn: func(ctx context.Context, name, email string, password []byte) (models.User, error) {
			return models.User{Name: name, Email: email}, nil
		},
		LoginFn: func(ctx context.Context, email string, password []byte) (api.Session, error) {
			return api.Session{Token: "tok", User: models.User{Name: "Ana", Email: email}}, nil
		},
		CartFn:     func(ctx context.Context) ([]models.CartItem, error) { return nil, nil },
		MyOffersFn: func(ctx context.Context) ([]models.Offer, error) { return nil, nil },
	}
	app := newTestApp(t, client)
	stubInput(t, []string{"Ana", "ana@example.com"}, []byte("longenoughpw"))

	require.NoError(t, app.Register(context.Background()))
	assert.True(t, app.isLoggedIn())
}

func TestLogoutCommandClearsSession(t *testing.T) {
	client := &apitest.Fake{
		LoginFn: func(ctx context.Context, email string, password []byte) (api.Session, error) {
			return api.Session{Token: "tok", User: models.User{Name: "Ana", Email: email}}, nil
		},
		LogoutFn:   func(ctx context.Context) error { return nil },
		CartFn:     func(ctx context.Context) ([]models.CartItem, error) { return nil, nil },
		MyOffersFn: func(ctx context.Context) ([]models.Offer, error) { return nil, nil },
	}
	app := newTestApp(t, client)
	stubInput(t, []string{"ana@example.com"}, []byte("hunter2secret"))
	require.NoError(t, app.Login(context.Background()))

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, client.Token)
}
