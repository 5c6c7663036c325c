package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ammar0144/wawi4go/pkg/model"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
}

var productAddCmd = &cobra.Command{
	Use:   "add <name> <price> <quantity>",
	Short: "Add a product",
	Long: `Add a product to the inventory.

The price accepts both decimal separators, so "1,99" and "1.99" are the
same value.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := model.ParsePrice(args[1])
		if err != nil {
			return err
		}
		quantity, err := model.ParseQuantity(args[2])
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		product, err := model.NewProduct(args[0], price, quantity)
		if err != nil {
			return err
		}
		if err := a.products.Add(cmd.Context(), product); err != nil {
			return err
		}

		fmt.Printf("added product %d: %s\n", product.ID, product.Name)
		return nil
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.products.LoadAll(cmd.Context()); err != nil {
			return err
		}

		printProducts(a.products.Items())
		return nil
	},
}

var productRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a product by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.products.Remove(cmd.Context(), uint(id)); err != nil {
			return err
		}

		fmt.Printf("removed product %d\n", id)
		return nil
	},
}

var productSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search products by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		products, err := a.products.SearchByName(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printProducts(products)
		return nil
	},
}

func printProducts(products []model.Product) {
	if len(products) == 0 {
		fmt.Println("no products")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQUANTITY")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\n", p.ID, p.Name, p.Price, p.Quantity)
	}
	_ = w.Flush()
}

func init() {
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productRemoveCmd)
	productCmd.AddCommand(productSearchCmd)
}
