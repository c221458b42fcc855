package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
	"github.com/Jtanchezz/GeneralStore/internal/client/config"
	"github.com/Jtanchezz/GeneralStore/internal/client/currency"
	"github.com/Jtanchezz/GeneralStore/internal/client/localdb"
	"github.com/Jtanchezz/GeneralStore/internal/client/models"
	"github.com/Jtanchezz/GeneralStore/internal/client/services"
	"github.com/Jtanchezz/GeneralStore/internal/client/session"
	"github.com/Jtanchezz/GeneralStore/internal/common"
	"github.com/Jtanchezz/GeneralStore/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the config, local storage, API gateway, session and the
// per-view stores behind the interactive REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *localdb.Repositories
	client  api.Client
	session *session.Store
	rates   *currency.Cache
	format  *currency.Formatter
	catalog *services.CatalogService
	cart    *services.CartService
	offers  *services.OfferService
	notice  *Notice
	reader  *bufio.Reader

	view View

	filterCategory string
	filterTerm     string

	// last listing printed to the user; index commands refer into it
	visibleCameras []models.Camera
	visibleOffers  []models.Offer

	galleryIdx map[uuid.UUID]int
	galleries  map[uuid.UUID]*models.Gallery
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.InitDatabase(ctx, cfg.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.OperatingCurrency, log)
	sess := session.NewStore(apiClient, db.Metadata, cfg, log)
	rates := currency.NewCache(apiClient, nil)
	catalog := services.NewCatalogService(apiClient, rates, log)
	cart := services.NewCartService(apiClient, sess, catalog, rates, log)
	offers := services.NewOfferService(apiClient, sess, log)

	return &App{
		config:         cfg,
		log:            log,
		db:             db,
		client:         apiClient,
		session:        sess,
		rates:          rates,
		format:         currency.NewFormatter(cfg.Locale),
		catalog:        catalog,
		cart:           cart,
		offers:         offers,
		notice:         NewNotice(cfg.NoticeTTL),
		reader:         bufio.NewReader(os.Stdin),
		view:           ViewHome,
		filterCategory: "all",
		galleryIdx:     make(map[uuid.UUID]int),
		galleries:      make(map[uuid.UUID]*models.Gallery),
	}, nil
}

// Run resumes any persisted session, loads the catalog and blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if user, err := a.session.Resume(ctx); err != nil {
		switch {
		case errors.Is(err, common.ErrSessionExpired):
			a.notice.Show("Your session expired, please log in again.")
		case errors.Is(err, common.ErrAuthRequired):
			// nothing persisted, start anonymous
		default:
			a.log.Warn(ctx, "session resume failed", "error", err)
		}
	} else {
		a.notice.Show(fmt.Sprintf("Welcome back, %s!", user.Name))
		a.refreshStores(ctx)
	}

	if err := a.catalog.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "initial catalog load failed", "error", err)
		a.notice.Show("Could not reach the store, showing nothing yet.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool { return a.session.Authenticated() }

func (a *App) isAdmin() bool { return a.session.IsAdmin() }

// refreshStores reloads everything that depends on the session.
func (a *App) refreshStores(ctx context.Context) {
	if err := a.cart.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "cart refresh failed", "error", err)
	}
	if err := a.offers.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "offers refresh failed", "error", err)
	}
}

// status builds the prompt fragment: view, user and any active notice.
func (a *App) status() string {
	s := string(a.view)
	if user, ok := a.session.CurrentUser(); ok {
		s += " " + user.Email
		if user.IsAdmin {
			s += " admin"
		}
	}
	if msg, ok := a.notice.Current(); ok {
		printlnFn("* " + msg)
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) setView(v View) {
	if v == ViewAdmin && !a.isAdmin() {
		fmt.Println("The admin view needs an admin session.")
		return
	}
	a.view = v
}

// price renders a listing price in the display currency, falling back to
// the base currency when the rate is not cached.
func (a *App) price(c models.Camera) string {
	display := a.session.DisplayCurrency()
	if converted, ok := a.rates.Convert(c.Price, c.Currency, display); ok {
		return a.format.Format(converted, display)
	}
	return a.format.Format(c.Price, c.Currency)
}

// fail prints an actionable message for err and logs the rest.
func (a *App) fail(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrAuthRequired):
		fmt.Println("Please log in first.")
	case errors.Is(err, common.ErrValidation):
		fmt.Println(err.Error())
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Println("Your session is no longer valid, please log in again.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("The store is unreachable right now, try again later.")
	default:
		a.log.Error(ctx, "command failed", "error", err)
		fmt.Println("Something went wrong:", err.Error())
	}
}
