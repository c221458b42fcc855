package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
)

func describeOffer(o models.Offer) string {
	s := fmt.Sprintf("%s %s (%s) asking %.2f %s - %s",
		o.Brand, o.CameraTitle, o.Condition,
		models.CentsToPrice(o.AskingPriceCents), o.PreferredCurrency, o.Status)
	if o.CounterOfferCents != nil {
		s += fmt.Sprintf(", counter %.2f %s", models.CentsToPrice(*o.CounterOfferCents), o.PreferredCurrency)
	}
	if o.Status.Terminal() {
		s += " (closed)"
	}
	return s
}

// ListOffers prints the user's own sell-to-us submissions.
func (a *App) ListOffers(ctx context.Context) {
	if err := a.offers.Refresh(ctx); err != nil {
		a.fail(ctx, err)
		return
	}

	mine := a.offers.Mine()
	a.visibleOffers = mine
	if len(mine) == 0 {
		fmt.Println("You have no offers yet. Use 'sell' to make one.")
		return
	}
	for i, o := range mine {
		fmt.Printf("%2d. %s\n", i+1, describeOffer(o))
	}
}

// Sell walks through an offer submission: item details, asking price in the
// operating currency, notes, and at least three image files to upload.
func (a *App) Sell(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Camera title", os.Stdout)
	if err != nil {
		return
	}
	brand, err := getSimpleText(a.reader, "Brand", os.Stdout)
	if err != nil {
		return
	}
	condition, err := getSimpleText(a.reader, "Condition (New, Excellent, Good, Rough)", os.Stdout)
	if err != nil {
		return
	}
	price, err := GetFloat(a.reader,
		fmt.Sprintf("Asking price in %s", a.session.OperatingCurrency()), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	notes, err := getSimpleText(a.reader, "Notes on the item's condition", os.Stdout)
	if err != nil {
		return
	}
	paths, err := getSimpleText(a.reader, "Image files (space-separated, at least 3)", os.Stdout)
	if err != nil {
		return
	}

	draft := models.OfferDraft{
		CameraTitle: title,
		Brand:       brand,
		Condition:   models.Condition(condition),
		AskingPrice: price,
		Notes:       notes,
	}
	offer, err := a.offers.Submit(ctx, draft, strings.Fields(paths))
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("Offer submitted, status %s.", offer.Status))
}

// PendingOffers prints the admin review queue.
func (a *App) PendingOffers(ctx context.Context) {
	if !a.isAdmin() {
		fmt.Println("Only admins can review offers.")
		return
	}
	if err := a.offers.Refresh(ctx); err != nil {
		a.fail(ctx, err)
		return
	}

	pending := a.offers.Pending()
	a.visibleOffers = pending
	if len(pending) == 0 {
		fmt.Println("No offers waiting for review.")
		return
	}
	for i, o := range pending {
		fmt.Printf("%2d. %s\n", i+1, describeOffer(o))
	}
}

// Decide applies a verdict to an offer from the last printed offer list:
// decide <n> <accept|decline|counter> [amount].
func (a *App) Decide(ctx context.Context, args []string) {
	idx, ok := parseIndex(args, len(a.visibleOffers))
	if !ok {
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: decide <n> <accept|decline|counter> [amount]")
		return
	}

	var action models.DecisionAction
	var amount float64
	switch args[1] {
	case "accept":
		action = models.DecisionAccept
	case "decline":
		action = models.DecisionDecline
	case "counter":
		action = models.DecisionCounter
		if len(args) < 3 {
			fmt.Println("A counter needs an amount: decide <n> counter <amount>")
			return
		}
		if _, err := fmt.Sscanf(args[2], "%g", &amount); err != nil {
			fmt.Println("Not a number:", args[2])
			return
		}
	default:
		fmt.Println("Unknown action:", args[1])
		return
	}

	offer, err := a.offers.Decide(ctx, a.visibleOffers[idx].ID, action, amount)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("Offer is now %s.", offer.Status))
}
