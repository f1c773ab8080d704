package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akodina/shopfront/internal/client/gateway"
)

// RunAdmin dispatches the back-office commands. The backend enforces the
// ADMIN role; the client only gives a friendlier error up front.
func (c *Cli) RunAdmin(ctx context.Context, args []string) error {
	if identity := c.sessions.Current(); identity != nil && !identity.IsAdmin() {
		return fmt.Errorf("admin commands require the ADMIN role")
	}

	if len(args) == 0 {
		return fmt.Errorf("usage: shopfront admin <users|products|categories|orders> ...")
	}

	switch args[0] {
	case "users":
		return c.runAdminUsers(ctx, args[1:])
	case "products":
		return c.runAdminProducts(ctx, args[1:])
	case "categories":
		return c.runAdminCategories(ctx, args[1:])
	case "orders":
		return c.runAdminOrders(ctx, args[1:])
	default:
		return fmt.Errorf("unknown admin area %q", args[0])
	}
}

func (c *Cli) runAdminUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		users, err := c.gateway.ListUsers(ctx)
		if err != nil {
			return err
		}
		c.io.Println("=== Users ===")
		for _, user := range users {
			c.io.Printf("%4d  %-30s %-20s %s\n", user.ID, user.Email, user.FirstName+" "+user.LastName, user.Role)
		}
		return nil

	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopfront admin users edit <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		fields, err := c.promptFields("first_name", "last_name", "phone_number", "role")
		if err != nil {
			return err
		}
		user, err := c.gateway.UpdateUser(ctx, id, fields)
		if err != nil {
			return err
		}
		c.io.Printf("✓ User %d updated (%s).\n", user.ID, user.Email)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopfront admin users delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.gateway.DeleteUser(ctx, id); err != nil {
			return err
		}
		c.io.Printf("✓ User %d deleted.\n", id)
		return nil

	default:
		return fmt.Errorf("unknown users command %q", args[0])
	}
}

func (c *Cli) runAdminProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		products, err := c.gateway.ListAdminProducts(ctx)
		if err != nil {
			return err
		}
		c.io.Println("=== Products (admin) ===")
		for _, product := range products {
			c.io.Printf("%4d  %-30s $%8.2f  stock %d\n", product.ID, product.Name, product.Price, product.Stock)
		}
		return nil

	case "create":
		imagePath, _, err := parseImageFlag("admin products create", args[1:])
		if err != nil {
			return err
		}
		fields, err := c.promptFields("name", "description", "price", "stock", "category")
		if err != nil {
			return err
		}
		image, cleanup, err := openAttachment(imagePath)
		if err != nil {
			return err
		}
		defer cleanup()

		product, err := c.gateway.CreateProduct(ctx, fields, image)
		if err != nil {
			return err
		}
		c.io.Printf("✓ Product %d created: %s\n", product.ID, product.Name)
		return nil

	case "update":
		imagePath, rest, err := parseImageFlag("admin products update", args[1:])
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			return fmt.Errorf("usage: shopfront admin products update [-image path] <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		fields, err := c.promptFields("name", "description", "price", "stock", "category")
		if err != nil {
			return err
		}
		image, cleanup, err := openAttachment(imagePath)
		if err != nil {
			return err
		}
		defer cleanup()

		product, err := c.gateway.UpdateProduct(ctx, id, fields, image)
		if err != nil {
			return err
		}
		c.io.Printf("✓ Product %d updated: %s\n", product.ID, product.Name)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopfront admin products delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.gateway.DeleteProduct(ctx, id); err != nil {
			return err
		}
		c.io.Printf("✓ Product %d deleted.\n", id)
		return nil

	default:
		return fmt.Errorf("unknown products command %q", args[0])
	}
}

func (c *Cli) runAdminCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		categories, err := c.gateway.ListAdminCategories(ctx)
		if err != nil {
			return err
		}
		c.io.Println("=== Categories (admin) ===")
		for _, category := range categories {
			c.io.Printf("%4d  %s\n", category.ID, category.Name)
		}
		return nil

	case "create":
		imagePath, _, err := parseImageFlag("admin categories create", args[1:])
		if err != nil {
			return err
		}
		fields, err := c.promptFields("name", "description")
		if err != nil {
			return err
		}
		image, cleanup, err := openAttachment(imagePath)
		if err != nil {
			return err
		}
		defer cleanup()

		category, err := c.gateway.CreateCategory(ctx, fields, image)
		if err != nil {
			return err
		}
		c.io.Printf("✓ Category %d created: %s\n", category.ID, category.Name)
		return nil

	case "update":
		imagePath, rest, err := parseImageFlag("admin categories update", args[1:])
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			return fmt.Errorf("usage: shopfront admin categories update [-image path] <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		fields, err := c.promptFields("name", "description")
		if err != nil {
			return err
		}
		image, cleanup, err := openAttachment(imagePath)
		if err != nil {
			return err
		}
		defer cleanup()

		category, err := c.gateway.UpdateCategory(ctx, id, fields, image)
		if err != nil {
			return err
		}
		c.io.Printf("✓ Category %d updated: %s\n", category.ID, category.Name)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopfront admin categories delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.gateway.DeleteCategory(ctx, id); err != nil {
			return err
		}
		c.io.Printf("✓ Category %d deleted.\n", id)
		return nil

	default:
		return fmt.Errorf("unknown categories command %q", args[0])
	}
}

func (c *Cli) runAdminOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		status := ""
		if len(args) > 1 {
			status = args[1]
		}
		orders, err := c.gateway.ListAdminOrders(ctx, status)
		if err != nil {
			return err
		}
		c.io.Println("=== Orders (admin) ===")
		for _, order := range orders {
			email := ""
			if order.User != nil {
				email = order.User.Email
			}
			c.io.Printf("%4d  %-12s $%8.2f  %s\n", order.ID, order.OrderStatus, order.Total, email)
		}
		return nil

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopfront admin orders show <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		order, err := c.gateway.GetAdminOrderDetail(ctx, id)
		if err != nil {
			return err
		}
		c.printOrder(order)
		return nil

	case "status":
		fs := flag.NewFlagSet("admin orders status", flag.ContinueOnError)
		notify := fs.Bool("notify", false, "Notify the customer about the change")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		rest := fs.Args()
		if len(rest) < 2 {
			return fmt.Errorf("usage: shopfront admin orders status [-notify] <id> <status>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		order, err := c.gateway.UpdateOrderStatus(ctx, id, rest[1], *notify)
		if err != nil {
			return err
		}
		c.io.Printf("✓ Order %d is now %s.\n", order.ID, order.OrderStatus)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopfront admin orders delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := c.gateway.DeleteOrder(ctx, id); err != nil {
			return err
		}
		c.io.Printf("✓ Order %d deleted.\n", id)
		return nil

	default:
		return fmt.Errorf("unknown orders command %q", args[0])
	}
}

// promptFields asks for each field in turn; empty answers are left out of
// the payload so the backend keeps the current value.
func (c *Cli) promptFields(names ...string) (map[string]any, error) {
	fields := make(map[string]any, len(names))
	for _, name := range names {
		value, err := c.io.ReadInput(fmt.Sprintf("%s: ", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if value != "" {
			fields[name] = value
		}
	}
	return fields, nil
}

// parseImageFlag parses an optional -image flag ahead of positional args.
func parseImageFlag(name string, args []string) (string, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	imagePath := fs.String("image", "", "Path to an image file to upload")
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}
	return *imagePath, fs.Args(), nil
}

// openAttachment opens the file at path as a multipart attachment. An
// empty path yields a nil attachment, which keeps updates on the JSON
// path and preserves the server-side image.
func openAttachment(path string) (*gateway.FileAttachment, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image file: %w", err)
	}

	attachment := &gateway.FileAttachment{
		Filename: filepath.Base(path),
		Reader:   f,
	}
	return attachment, func() { _ = f.Close() }, nil
}
