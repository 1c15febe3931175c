package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCartCommand(getApp func() *shopApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}

	cmd.AddCommand(
		newCartAddCommand(getApp),
		newCartRemoveCommand(getApp),
		newCartSetCommand(getApp),
		newCartShowCommand(getApp),
		newCartClearCommand(getApp),
	)
	return cmd
}

func newCartAddCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "add <slug>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			product, err := app.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := app.cart.AddProduct(product); err != nil {
				return fmt.Errorf("could not save cart: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d items in cart)\n",
				product.Name, app.cart.TotalItemCount())
			return nil
		},
	}
}

func newCartRemoveCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if err := app.cart.RemoveItem(args[0]); err != nil {
				return fmt.Errorf("could not save cart: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed (%d items in cart)\n", app.cart.TotalItemCount())
			return nil
		},
	}
}

func newCartSetCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set the quantity of a cart line, 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be an integer")
			}

			if err := app.cart.SetQuantity(args[0], quantity); err != nil {
				return fmt.Errorf("could not save cart: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated (%d items in cart)\n", app.cart.TotalItemCount())
			return nil
		},
	}
}

func newCartShowCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			lines := app.cart.Items()
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tQTY\tUNIT\tSUBTOTAL\tID")
			for _, l := range lines {
				fmt.Fprintf(w, "%s\t%d\t%s €\t%s €\t%s\n",
					l.Name, l.Quantity, l.UnitPrice, l.Subtotal(), l.ProductID)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %s € (%d items)\n",
				app.cart.TotalPrice(), app.cart.TotalItemCount())
			return nil
		},
	}
}

func newCartClearCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if err := app.cart.Clear(); err != nil {
				return fmt.Errorf("could not save cart: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}
