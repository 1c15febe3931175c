package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Bast8313/soundora/app/domain"
)

func newProductsCommand(getApp func() *shopApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
	}

	cmd.AddCommand(newProductsListCommand(getApp), newProductsShowCommand(getApp))
	return cmd
}

func newProductsListCommand(getApp func() *shopApp) *cobra.Command {
	var (
		page, limit        int
		category, brand    string
		search             string
		minPrice, maxPrice string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			query := domain.CatalogQuery{
				Page:     page,
				PageSize: limit,
				Category: category,
				Brand:    brand,
				Search:   search,
			}

			var err error
			if minPrice != "" {
				query.MinPrice, err = domain.ParseMoney(minPrice)
				if err != nil {
					return fmt.Errorf("invalid --min-price: %w", err)
				}
			}
			if maxPrice != "" {
				query.MaxPrice, err = domain.ParseMoney(maxPrice)
				if err != nil {
					return fmt.Errorf("invalid --max-price: %w", err)
				}
			}

			products, pagination, err := app.client.ListProducts(cmd.Context(), query)
			if err != nil {
				return err
			}

			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s €\t%d\n", p.Slug, p.Name, p.Price, p.Stock)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d/%d (%d products)\n",
				pagination.Page, pagination.TotalPages, pagination.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "products per page")
	cmd.Flags().StringVar(&category, "category", "", "filter by category slug")
	cmd.Flags().StringVar(&brand, "brand", "", "filter by brand slug")
	cmd.Flags().StringVar(&search, "search", "", "search in name and description")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price, e.g. 150.00")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price, e.g. 1500.00")
	return cmd
}

func newProductsShowCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			product, err := app.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", product.Name)
			fmt.Fprintf(out, "Price: %s €\n", product.Price)
			fmt.Fprintf(out, "Stock: %d\n", product.Stock)
			if product.Description != "" {
				fmt.Fprintf(out, "\n%s\n", product.Description)
			}
			return nil
		},
	}
}

func newCategoriesCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			categories, err := app.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\n", c.Slug, c.Name)
			}
			return w.Flush()
		},
	}
}

func newBrandsCommand(getApp func() *shopApp) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List brands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			brands, err := app.client.ListBrands(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME")
			for _, b := range brands {
				fmt.Fprintf(w, "%s\t%s\n", b.Slug, b.Name)
			}
			return w.Flush()
		},
	}
}
