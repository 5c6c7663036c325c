package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ammar0144/wawi4go/pkg/model"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerPhone string

var customerAddCmd = &cobra.Command{
	Use:   "add <name> <address> <email>",
	Short: "Add a customer",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		customer, err := model.NewCustomer(args[0], args[1], args[2], customerPhone)
		if err != nil {
			return err
		}
		if err := a.customers.Add(cmd.Context(), customer); err != nil {
			return err
		}

		fmt.Printf("added customer %d: %s\n", customer.ID, customer.Name)
		return nil
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.customers.LoadAll(cmd.Context()); err != nil {
			return err
		}

		customers := a.customers.Items()
		if len(customers) == 0 {
			fmt.Println("no customers")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tEMAIL\tPHONE")
		for _, c := range customers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Address, c.Email, c.Phone)
		}
		return w.Flush()
	},
}

var customerRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a customer by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid customer id %q", args[0])
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.customers.Remove(cmd.Context(), uint(id)); err != nil {
			return err
		}

		fmt.Printf("removed customer %d\n", id)
		return nil
	},
}

func init() {
	customerAddCmd.Flags().StringVar(&customerPhone, "phone", "", "phone number (optional)")

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerRemoveCmd)
}
