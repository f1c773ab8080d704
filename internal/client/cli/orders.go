package cli

import (
	"context"
	"fmt"

	"github.com/akodina/shopfront/pkg/api"
)

// RunOrders dispatches the order subcommands: list, show, create.
func (c *Cli) RunOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.runOrdersList(ctx)
	case "show":
		return c.runOrderShow(ctx, args[1:])
	case "create":
		return c.runOrderCreate(ctx)
	default:
		return fmt.Errorf("unknown orders command %q (expected list, show or create)", args[0])
	}
}

func (c *Cli) runOrdersList(ctx context.Context) error {
	orders, err := c.gateway.GetOrders(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Orders ===")
	if len(orders) == 0 {
		c.io.Println("No orders yet.")
		return nil
	}
	for _, order := range orders {
		c.io.Printf("%4d  %-12s $%8.2f  %s\n", order.ID, order.OrderStatus, order.Total, order.CreatedAt)
	}
	return nil
}

func (c *Cli) runOrderShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shopfront orders show <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	order, err := c.gateway.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	c.printOrder(order)
	return nil
}

// runOrderCreate checks out the current cart after collecting shipping
// details. The cart view is refreshed afterwards because the backend empties
// the cart when the order is placed.
func (c *Cli) runOrderCreate(ctx context.Context) error {
	c.cart.Refresh(ctx)
	summary := c.cart.Summary()
	if summary.ItemCount == 0 {
		return fmt.Errorf("your cart is empty")
	}

	c.io.Println("=== Checkout ===")
	c.io.Printf("Checking out %d item(s).\n", summary.ItemCount)
	c.io.Println()

	req := api.CreateOrderRequest{}
	var err error

	if req.ShippingAddress, err = c.io.ReadInput("Shipping address: "); err != nil {
		return fmt.Errorf("failed to read shipping address: %w", err)
	}
	if req.City, err = c.io.ReadInput("City: "); err != nil {
		return fmt.Errorf("failed to read city: %w", err)
	}
	if req.State, err = c.io.ReadInput("State: "); err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	if req.ZipCode, err = c.io.ReadInput("Zip code: "); err != nil {
		return fmt.Errorf("failed to read zip code: %w", err)
	}
	if req.PhoneNumber, err = c.io.ReadInput("Phone number: "); err != nil {
		return fmt.Errorf("failed to read phone number: %w", err)
	}

	order, err := c.gateway.CreateOrder(ctx, req)
	if err != nil {
		return err
	}

	c.cart.Refresh(ctx)

	c.io.Println()
	c.io.Printf("✓ Order #%d placed! Total: $%.2f\n", order.ID, order.Total)
	return nil
}

func (c *Cli) printOrder(order *api.Order) {
	c.io.Printf("=== Order #%d ===\n", order.ID)
	c.io.Printf("Status:  %s\n", order.OrderStatus)
	c.io.Printf("Created: %s\n", order.CreatedAt)
	if order.User != nil {
		c.io.Printf("User:    %s %s <%s>\n", order.User.FirstName, order.User.LastName, order.User.Email)
	}
	for _, item := range order.Items {
		c.io.Printf("  %-30s x%-3d $%8.2f\n", item.Product.Name, item.Quantity, item.Price)
	}
	c.io.Printf("Total: $%.2f\n", order.Total)
}
