package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	setView(v View)

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context)
	Filter(args []string)
	ShowItem(args []string)
	RotateGallery(args []string, delta int)
	MarkBroken(args []string)
	SetCurrency(args []string)

	ShowCart(ctx context.Context)
	AddToCart(ctx context.Context, args []string)
	RemoveFromCart(ctx context.Context, args []string)
	Checkout(ctx context.Context)

	ListOffers(ctx context.Context)
	Sell(ctx context.Context)
	PendingOffers(ctx context.Context)
	Decide(ctx context.Context, args []string)

	NewItem(ctx context.Context)
	EditItem(ctx context.Context, args []string)
	DeleteItem(ctx context.Context, args []string)
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on 'a'. The loop exits on scanner EOF or "exit"/"quit".
// Handlers report their own errors; the loop only routes.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("store %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "home":
			a.setView(ViewHome)
		case "admin":
			a.setView(ViewAdmin)

		case "login":
			a.setView(ViewLogin)
			_ = a.Login(ctx)
		case "register":
			a.setView(ViewRegister)
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			a.List(ctx)
		case "filter":
			a.Filter(args)
		case "show":
			a.ShowItem(args)
		case "next":
			a.RotateGallery(args, 1)
		case "prev":
			a.RotateGallery(args, -1)
		case "broken":
			a.MarkBroken(args)
		case "currency":
			a.SetCurrency(args)

		case "cart":
			a.ShowCart(ctx)
		case "add":
			a.AddToCart(ctx, args)
		case "remove":
			a.RemoveFromCart(ctx, args)
		case "checkout":
			a.Checkout(ctx)

		case "offers":
			a.ListOffers(ctx)
		case "sell":
			a.Sell(ctx)
		case "pending":
			a.PendingOffers(ctx)
		case "decide":
			a.Decide(ctx, args)

		case "newitem":
			a.NewItem(ctx)
		case "edititem":
			a.EditItem(ctx, args)
		case "delitem":
			a.DeleteItem(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Browsing: (l)ist, filter <category> [term], show <n>, next <n>, prev <n>, broken <n>, currency <code>")
	if !a.isLoggedIn() {
		printlnFn("Account:  login, register, exit")
		return
	}
	printlnFn("Cart:     cart, add <n>, remove <n>, checkout")
	printlnFn("Selling:  offers, sell")
	if a.isAdmin() {
		printlnFn("Admin:    pending, decide <n> <accept|decline|counter> [amount], newitem, edititem <n>, delitem <n>, admin, home")
	}
	printlnFn("Account:  logout, exit")
}
