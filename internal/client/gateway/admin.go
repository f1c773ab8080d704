package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/akodina/shopfront/pkg/api"
)

// Admin back-office endpoints. Product and category writes follow the
// image-preservation contract: creates always go out as multipart (the
// form may carry a file), while updates are multipart only when a new
// file is supplied. A JSON update leaves the stored image untouched,
// whereas a multipart update without the image part would clear it
// server-side.

// ListUsers returns all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]api.User, error) {
	raw, err := c.Get(ctx, "/auth/admin/users/")
	if err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	var users []api.User
	if err := decodeResponse(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser edits a user account.
func (c *Client) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (*api.User, error) {
	path := fmt.Sprintf("/auth/admin/users/%d/edit/", userID)
	raw, err := c.Put(ctx, path, fields)
	if err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	var user api.User
	if err := decodeResponse(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/auth/admin/users/%d/", userID)
	if _, err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}
	return nil
}

// ListAdminProducts returns all products including unpublished ones.
func (c *Client) ListAdminProducts(ctx context.Context) ([]api.Product, error) {
	raw, err := c.Get(ctx, "/products/admin/products/")
	if err != nil {
		return nil, fmt.Errorf("list admin products request failed: %w", err)
	}
	var products []api.Product
	if err := decodeResponse(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product. Always multipart so an image may ride
// along with the text fields.
func (c *Client) CreateProduct(ctx context.Context, fields map[string]any, image *FileAttachment) (*api.Product, error) {
	payload, err := NewMultipartPayload(fields, image)
	if err != nil {
		return nil, err
	}
	raw, err := c.Post(ctx, "/products/admin/products/", payload)
	if err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	var product api.Product
	if err := decodeResponse(raw, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct edits a product. With a new image the body is multipart;
// without one it is plain JSON so the existing image survives.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, fields map[string]any, image *FileAttachment) (*api.Product, error) {
	path := fmt.Sprintf("/products/admin/products/%d/", productID)

	var body any = fields
	if image != nil {
		payload, err := NewMultipartPayload(fields, image)
		if err != nil {
			return nil, err
		}
		body = payload
	}

	raw, err := c.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	var product api.Product
	if err := decodeResponse(raw, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/products/admin/products/%d/", productID)
	if _, err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	return nil
}

// ListAdminCategories returns all categories.
func (c *Client) ListAdminCategories(ctx context.Context) ([]api.Category, error) {
	raw, err := c.Get(ctx, "/products/admin/categories/")
	if err != nil {
		return nil, fmt.Errorf("list admin categories request failed: %w", err)
	}
	var categories []api.Category
	if err := decodeResponse(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category, multipart like CreateProduct.
func (c *Client) CreateCategory(ctx context.Context, fields map[string]any, image *FileAttachment) (*api.Category, error) {
	payload, err := NewMultipartPayload(fields, image)
	if err != nil {
		return nil, err
	}
	raw, err := c.Post(ctx, "/products/admin/categories/", payload)
	if err != nil {
		return nil, fmt.Errorf("create category request failed: %w", err)
	}
	var category api.Category
	if err := decodeResponse(raw, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory edits a category with the same image-preservation rule
// as UpdateProduct.
func (c *Client) UpdateCategory(ctx context.Context, categoryID int64, fields map[string]any, image *FileAttachment) (*api.Category, error) {
	path := fmt.Sprintf("/products/admin/categories/%d/", categoryID)

	var body any = fields
	if image != nil {
		payload, err := NewMultipartPayload(fields, image)
		if err != nil {
			return nil, err
		}
		body = payload
	}

	raw, err := c.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("update category request failed: %w", err)
	}
	var category api.Category
	if err := decodeResponse(raw, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, categoryID int64) error {
	path := fmt.Sprintf("/products/admin/categories/%d/", categoryID)
	if _, err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete category request failed: %w", err)
	}
	return nil
}

// ListAdminOrders returns all orders, optionally filtered by status.
func (c *Client) ListAdminOrders(ctx context.Context, status string) ([]api.Order, error) {
	path := "/orders/admin/"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	raw, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list admin orders request failed: %w", err)
	}
	var orders []api.Order
	if err := decodeResponse(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAdminOrderDetail returns one order with its user attached.
func (c *Client) GetAdminOrderDetail(ctx context.Context, orderID int64) (*api.Order, error) {
	path := fmt.Sprintf("/orders/admin/%d/", orderID)
	raw, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get admin order request failed: %w", err)
	}
	var order api.Order
	if err := decodeResponse(raw, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus changes an order's status, optionally asking the
// backend to notify the customer.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string, sendNotification bool) (*api.Order, error) {
	path := fmt.Sprintf("/orders/admin/%d/", orderID)
	req := api.UpdateOrderStatusRequest{OrderStatus: status, SendNotification: sendNotification}
	raw, err := c.Put(ctx, path, req)
	if err != nil {
		return nil, fmt.Errorf("update order status request failed: %w", err)
	}
	var order api.Order
	if err := decodeResponse(raw, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, orderID int64) error {
	path := fmt.Sprintf("/orders/admin/%d/", orderID)
	if _, err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete order request failed: %w", err)
	}
	return nil
}
