// Package cli implements the shopfront terminal commands.
package cli

import (
	"fmt"
	"strconv"

	"github.com/akodina/shopfront/internal/client/auth"
	"github.com/akodina/shopfront/internal/client/cart"
	"github.com/akodina/shopfront/internal/client/gateway"
	"github.com/akodina/shopfront/internal/client/iocli"
	"github.com/akodina/shopfront/internal/client/session"
	"github.com/akodina/shopfront/internal/client/storage"
)

type Cli struct {
	io       iocli.IO
	gateway  *gateway.Client
	auth     *auth.Service
	cart     *cart.Synchronizer
	sessions *session.Manager
	creds    storage.CredentialStorage
}

func New(io iocli.IO, gw *gateway.Client, authService *auth.Service, cartSync *cart.Synchronizer, sessions *session.Manager, creds storage.CredentialStorage) *Cli {
	return &Cli{
		io:       io,
		gateway:  gw,
		auth:     authService,
		cart:     cartSync,
		sessions: sessions,
		creds:    creds,
	}
}

// LoginRedirect is the CLI rendition of the forced navigation a web
// surface performs on session expiry.
type LoginRedirect struct {
	io iocli.IO
}

func NewLoginRedirect(io iocli.IO) *LoginRedirect {
	return &LoginRedirect{io: io}
}

// RedirectToLogin satisfies gateway.Navigator.
func (r *LoginRedirect) RedirectToLogin() {
	r.io.Println("Session expired. Please run 'shopfront login'.")
}

// PrintUsage prints the command summary.
func PrintUsage() {
	fmt.Println("Usage: shopfront [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                       Log in to the storefront")
	fmt.Println("  register                    Create a new account")
	fmt.Println("  logout                      Log out and forget the session")
	fmt.Println("  status                      Show session status")
	fmt.Println("  profile [edit]              Show or edit your profile")
	fmt.Println("  products                    List the newest products")
	fmt.Println("  product <id>                Show one product")
	fmt.Println("  categories [id]             List categories, or one category's products")
	fmt.Println("  cart list|add|update|remove Manage your cart")
	fmt.Println("  orders list|show|create     Order history and checkout")
	fmt.Println("  admin <area> ...            Back-office management (users, products,")
	fmt.Println("                              categories, orders)")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server <url>  Backend base URL")
	fmt.Println("  -db <path>     Path to the local session database")
}

// parseID parses a numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
