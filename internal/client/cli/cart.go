package cli

import (
	"context"
	"fmt"
)

// ShowCart prints the cart with a best-effort total in the display currency.
func (a *App) ShowCart(ctx context.Context) {
	if err := a.cart.Refresh(ctx); err != nil {
		a.fail(ctx, err)
		return
	}

	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	for i, item := range items {
		fmt.Printf("%2d. %s %s %s\n", i+1, item.Camera.Brand, item.Camera.Title, a.price(item.Camera))
	}

	display := a.session.DisplayCurrency()
	fmt.Printf("Total: %s\n", a.format.Format(a.cart.Total(display), display))
}

// AddToCart saves a listing from the last printed listing into the cart.
func (a *App) AddToCart(ctx context.Context, args []string) {
	c, ok := a.cameraAt(args)
	if !ok {
		return
	}
	if err := a.cart.Add(ctx, c.ID); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("%s added to cart.", c.Title))
}

// RemoveFromCart drops a cart line by its position in the cart listing.
func (a *App) RemoveFromCart(ctx context.Context, args []string) {
	items := a.cart.Items()
	idx, ok := parseIndex(args, len(items))
	if !ok {
		return
	}
	if err := a.cart.Remove(ctx, items[idx].Camera.ID); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show("Removed from cart.")
}

// Checkout turns the cart into a purchase and reports how many items went
// through.
func (a *App) Checkout(ctx context.Context) {
	result, err := a.cart.Checkout(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("Purchase complete: %d item(s).", result.Count))
}
