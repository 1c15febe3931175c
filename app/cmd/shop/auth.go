package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(getApp func() *shopApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Authenticate and persist the session locally",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			identity, err := app.session.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.DisplayName())
			return nil
		},
	}
	return cmd
}

func newRegisterCommand(getApp func() *shopApp) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			identity, err := app.session.Register(cmd.Context(), args[0], args[1], firstName, lastName)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", identity.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	return cmd
}

func newLogoutCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()
			app.session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			identity := app.session.CurrentIdentity()
			if identity == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", identity.DisplayName(), identity.Email)
			return nil
		},
	}
}

func newCheckoutCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if err := app.requireLogin(); err != nil {
				return err
			}

			lines := app.cart.Items()
			if len(lines) == 0 {
				return fmt.Errorf("cart is empty")
			}

			order, err := app.client.CreateOrder(cmd.Context(), app.session.Token(), lines)
			if err != nil {
				return err
			}

			// The server re-prices every line; the order total is
			// authoritative, not the local cart total.
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s placed, total %s €\n", order.ID, order.Total)

			if err := app.cart.Clear(); err != nil {
				app.logger.Warn("could not clear cart after checkout", "error", err)
			}
			return nil
		},
	}
}
