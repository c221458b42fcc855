package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Jtanchezz/GeneralStore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the display
// currency follows the profile preference and the session-scoped stores are
// reloaded. The password bytes are wiped inside the session store.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email"
	last := a.session.LastEmail(ctx)
	if last != "" {
		prompt = fmt.Sprintf("Enter email [%s]", last)
	}
	email, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = last
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Authenticate(ctx, email, password)
	if err != nil {
		a.fail(ctx, err)
		return err
	}

	a.setView(ViewHome)
	if ttl := a.session.SessionTTLSeconds(); ttl > 0 {
		a.notice.Show(fmt.Sprintf("Welcome back, %s! Session valid for %d days.",
			user.Name, ttl/86400))
	} else {
		a.notice.Show(fmt.Sprintf("Welcome back, %s!", user.Name))
	}
	a.refreshStores(ctx)
	return nil
}

// Register prompts for a profile and creates the account, then rides the
// session straight through login. The server enforces the same field rules;
// checking here just saves a round trip.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	if len(name) < 2 {
		fmt.Println("Name must be at least 2 characters.")
		return common.ErrValidation
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if len(password) < 8 || len(password) > 128 {
		common.WipeByteArray(password)
		fmt.Println("Password must be 8-128 characters.")
		return common.ErrValidation
	}

	user, err := a.session.Register(ctx, name, email, password)
	if err != nil {
		a.fail(ctx, err)
		return err
	}

	a.setView(ViewHome)
	a.notice.Show(fmt.Sprintf("Welcome, %s!", user.Name))
	a.refreshStores(ctx)
	return nil
}

// Logout ends the session and drops everything tied to it.
func (a *App) Logout(ctx context.Context) error {
	a.session.EndSession(ctx)
	a.refreshStores(ctx)
	a.visibleOffers = nil
	a.setView(ViewHome)
	a.notice.Show("Logged out.")
	return nil
}
