package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akodina/shopfront/internal/client/auth"
	"github.com/akodina/shopfront/internal/client/cart"
	"github.com/akodina/shopfront/internal/client/cli"
	"github.com/akodina/shopfront/internal/client/gateway"
	"github.com/akodina/shopfront/internal/client/iocli"
	"github.com/akodina/shopfront/internal/client/session"
	"github.com/akodina/shopfront/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8000/api", "Backend base URL")
	dbPath := flag.String("db", "shopfront.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	io := iocli.NewStdio()

	// Durable session store, the localStorage of this client.
	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	clientID, err := store.ClientID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read client id: %v\n", err)
		os.Exit(1)
	}

	gw := gateway.NewClient(*serverURL, store, cli.NewLoginRedirect(io), logger, clientID)
	sessions := session.NewManager()
	authService := auth.NewService(gw, store, sessions, logger)

	cartSync := cart.NewSynchronizer(gw, sessions, logger)
	defer cartSync.Close()

	// Rebuild the identity from a persisted session; an invalid one is
	// wiped here so every command starts from a clean state.
	if err := authService.Restore(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	c := cli.New(io, gw, authService, cartSync, sessions, store)

	if err := run(ctx, c, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Cli, command string, args []string) error {
	switch command {
	case "login":
		return c.RunLogin(ctx)
	case "register":
		return c.RunRegister(ctx)
	case "logout":
		return c.RunLogout(ctx)
	case "status":
		return c.RunStatus(ctx)
	case "profile":
		return c.RunProfile(ctx, args)
	case "products":
		return c.RunProducts(ctx)
	case "product":
		return c.RunProduct(ctx, args)
	case "categories":
		return c.RunCategories(ctx, args)
	case "cart":
		return c.RunCart(ctx, args)
	case "orders":
		return c.RunOrders(ctx, args)
	case "admin":
		return c.RunAdmin(ctx, args)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printVersion() {
	fmt.Printf("Shopfront Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
