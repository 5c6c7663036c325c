// Package seed fills an empty database with a small demo data set.
package seed

import (
	"context"
	"fmt"

	"github.com/ammar0144/wawi4go/pkg/manager"
	"github.com/ammar0144/wawi4go/pkg/model"

	"go.uber.org/zap"
)

// Result reports what the seeder did
type Result struct {
	ProductsAdded  int
	CustomersAdded int

	// Skipped flags are set when the table already had rows
	ProductsSkipped  bool
	CustomersSkipped bool
}

// Products returns the demo product set
func Products() []model.Product {
	return []model.Product{
		{Name: "Schraubendreher-Set", Price: 24.99, Quantity: 35},
		{Name: "Akkuschrauber 18V", Price: 129.90, Quantity: 12},
		{Name: "Hammer 300g", Price: 9.49, Quantity: 58},
		{Name: "Wasserwaage 60cm", Price: 14.95, Quantity: 21},
		{Name: "Arbeitshandschuhe", Price: 6.99, Quantity: 140},
		{Name: "Kabeltrommel 25m", Price: 44.50, Quantity: 8},
	}
}

// Customers returns the demo customer set
func Customers() []model.Customer {
	return []model.Customer{
		{Name: "Anna Schmidt", Address: "Hauptstraße 12, 10115 Berlin", Email: "anna.schmidt@example.com", Phone: "+49 30 1234567"},
		{Name: "Jonas Weber", Address: "Gartenweg 3, 80331 München", Email: "jonas.weber@example.com", Phone: "+49 89 7654321"},
		{Name: "Miriam Fischer", Address: "Am Markt 8, 20095 Hamburg", Email: "m.fischer@example.com", Phone: ""},
		{Name: "Lukas Braun", Address: "Bahnhofstraße 44, 50667 Köln", Email: "lukas.braun@example.com", Phone: "+49 221 998877"},
	}
}

// Run seeds products and customers through the managers. Tables that
// already contain rows are left untouched.
func Run(ctx context.Context, products *manager.ProductManager, customers *manager.CustomerManager, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var result Result

	count, err := products.Count(ctx)
	if err != nil {
		return result, fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		result.ProductsSkipped = true
		log.Info("products table not empty, skipping seed", zap.Int64("existing", count))
	} else {
		for _, p := range Products() {
			product := p
			if err := products.Add(ctx, &product); err != nil {
				return result, fmt.Errorf("seeding product %q: %w", p.Name, err)
			}
			result.ProductsAdded++
		}
	}

	count, err = customers.Count(ctx)
	if err != nil {
		return result, fmt.Errorf("counting customers: %w", err)
	}
	if count > 0 {
		result.CustomersSkipped = true
		log.Info("customers table not empty, skipping seed", zap.Int64("existing", count))
	} else {
		for _, c := range Customers() {
			customer := c
			if err := customers.Add(ctx, &customer); err != nil {
				return result, fmt.Errorf("seeding customer %q: %w", c.Name, err)
			}
			result.CustomersAdded++
		}
	}

	log.Info("seed finished",
		zap.Int("products", result.ProductsAdded),
		zap.Int("customers", result.CustomersAdded))

	return result, nil
}
