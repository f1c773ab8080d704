package cli

import (
	"context"
	"fmt"

	"github.com/akodina/shopfront/pkg/api"
)

// RunProducts lists the newest products.
func (c *Cli) RunProducts(ctx context.Context) error {
	products, err := c.gateway.GetNewestProducts(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Products ===")
	c.printProducts(products)
	return nil
}

// RunProduct shows one product.
func (c *Cli) RunProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shopfront product <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	product, err := c.gateway.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", product.Name)
	if product.Description != "" {
		c.io.Println(product.Description)
	}
	c.io.Printf("Price: $%.2f\n", product.Price)
	c.io.Printf("Stock: %d\n", product.Stock)

	return nil
}

// RunCategories lists categories, or one category's products when an id
// is given.
func (c *Cli) RunCategories(ctx context.Context, args []string) error {
	if len(args) > 0 {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		products, err := c.gateway.GetProductsByCategory(ctx, id)
		if err != nil {
			return err
		}
		c.io.Println("=== Category products ===")
		c.printProducts(products)
		return nil
	}

	categories, err := c.gateway.GetCategories(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Categories ===")
	if len(categories) == 0 {
		c.io.Println("No categories.")
		return nil
	}
	for _, category := range categories {
		c.io.Printf("%4d  %s\n", category.ID, category.Name)
	}
	return nil
}

func (c *Cli) printProducts(products []api.Product) {
	if len(products) == 0 {
		c.io.Println("No products.")
		return
	}
	for _, product := range products {
		c.io.Printf("%4d  %-30s $%8.2f  stock %d\n", product.ID, product.Name, product.Price, product.Stock)
	}
}
