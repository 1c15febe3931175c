package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Bast8313/soundora/app/config"
	"github.com/Bast8313/soundora/app/driver/api"
	"github.com/Bast8313/soundora/app/driver/localstore"
	"github.com/Bast8313/soundora/app/port"
	"github.com/Bast8313/soundora/app/store/cart"
	"github.com/Bast8313/soundora/app/store/session"
	"github.com/Bast8313/soundora/app/utils/logger"
)

// shopApp bundles the client-side state the subcommands operate on. The
// key-value store is opened once per invocation and closed after the
// command finishes, so every mutation is on disk before the process exits.
type shopApp struct {
	cfg     *config.ClientConfig
	logger  *slog.Logger
	kv      port.KeyValueStore
	client  port.StorefrontClient
	session *session.Store
	cart    *cart.Store
}

func (a *shopApp) close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.logger.Warn("could not close state store", "error", err)
		}
	}
}

// requireLogin returns the error shown by commands that need a session.
func (a *shopApp) requireLogin() error {
	if !a.session.IsLoggedIn() {
		return fmt.Errorf("not logged in, run `shop login` first")
	}
	return nil
}

func newApp() (*shopApp, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	kv, err := localstore.NewSQLiteStore(cfg.StatePath(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, appLogger)

	return &shopApp{
		cfg:     cfg,
		logger:  appLogger,
		kv:      kv,
		client:  client,
		session: session.NewStore(client, kv, appLogger),
		cart:    cart.NewStore(kv, appLogger),
	}, nil
}

func newRootCommand() *cobra.Command {
	var app *shopApp

	root := &cobra.Command{
		Use:           "shop",
		Short:         "Soundora terminal storefront",
		Long:          "Browse the Soundora catalog, manage a local cart and place orders from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.close()
			}
		},
	}

	getApp := func() *shopApp { return app }

	root.AddCommand(
		newLoginCommand(getApp),
		newRegisterCommand(getApp),
		newLogoutCommand(getApp),
		newWhoamiCommand(getApp),
		newProductsCommand(getApp),
		newCategoriesCommand(getApp),
		newBrandsCommand(getApp),
		newCartCommand(getApp),
		newCheckoutCommand(getApp),
	)

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
