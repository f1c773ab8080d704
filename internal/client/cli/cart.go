package cli

import (
	"context"
	"fmt"
	"strconv"
)

// RunCart dispatches the cart subcommands: list, add, update, remove.
func (c *Cli) RunCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.runCartList(ctx)
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "update":
		return c.runCartUpdate(ctx, args[1:])
	case "remove":
		return c.runCartRemove(ctx, args[1:])
	default:
		return fmt.Errorf("unknown cart command %q (expected list, add, update or remove)", args[0])
	}
}

func (c *Cli) runCartList(ctx context.Context) error {
	c.cart.Refresh(ctx)
	summary := c.cart.Summary()

	c.io.Println("=== Cart ===")
	if len(summary.Items) == 0 {
		c.io.Println("Your cart is empty.")
		return nil
	}

	total := 0.0
	for _, item := range summary.Items {
		c.io.Printf("%4d  %-30s x%-3d $%8.2f\n", item.ID, item.Product.Name, item.Quantity, item.Subtotal)
		total += item.Subtotal
	}
	c.io.Printf("Total: %d item(s), $%.2f\n", summary.ItemCount, total)

	return nil
}

func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shopfront cart add <product-id> [quantity]")
	}

	productID, err := parseID(args[0])
	if err != nil {
		return err
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
	}

	if err := c.cart.AddItem(ctx, productID, quantity); err != nil {
		return err
	}

	summary := c.cart.Summary()
	c.io.Printf("✓ Added to cart. Cart now holds %d item(s).\n", summary.ItemCount)
	return nil
}

func (c *Cli) runCartUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: shopfront cart update <item-id> <quantity>")
	}

	itemID, err := parseID(args[0])
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil || quantity < 1 {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	if err := c.cart.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return err
	}

	summary := c.cart.Summary()
	c.io.Printf("✓ Cart updated. Cart now holds %d item(s).\n", summary.ItemCount)
	return nil
}

func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shopfront cart remove <item-id>")
	}

	itemID, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := c.cart.RemoveItem(ctx, itemID); err != nil {
		return err
	}

	summary := c.cart.Summary()
	c.io.Printf("✓ Item removed. Cart now holds %d item(s).\n", summary.ItemCount)
	return nil
}
