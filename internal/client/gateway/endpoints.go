package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akodina/shopfront/pkg/api"
)

// Typed wrappers over the Execute contract for every storefront endpoint.
// They decode the backend's native shape into pkg/api types but add no
// transformation beyond that.

// decodeResponse unmarshals a successful raw body into out. A nil out
// discards the body (some endpoints answer with shapes the client never
// uses).
func decodeResponse(raw json.RawMessage, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	raw, err := c.Post(ctx, "/auth/login/", api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	var resp api.AuthResponse
	if err := decodeResponse(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and returns the same token pair a login
// does.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	raw, err := c.Post(ctx, "/auth/register/", req)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	var resp api.AuthResponse
	if err := decodeResponse(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile returns the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*api.User, error) {
	raw, err := c.Get(ctx, "/auth/profile/")
	if err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	var user api.User
	if err := decodeResponse(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*api.User, error) {
	raw, err := c.Put(ctx, "/auth/profile/", req)
	if err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	var user api.User
	if err := decodeResponse(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCategories returns all product categories.
func (c *Client) GetCategories(ctx context.Context) ([]api.Category, error) {
	raw, err := c.Get(ctx, "/products/categories/")
	if err != nil {
		return nil, fmt.Errorf("get categories request failed: %w", err)
	}
	var categories []api.Category
	if err := decodeResponse(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetNewestProducts returns the storefront's newest products.
func (c *Client) GetNewestProducts(ctx context.Context) ([]api.Product, error) {
	raw, err := c.Get(ctx, "/products/newest/")
	if err != nil {
		return nil, fmt.Errorf("get products request failed: %w", err)
	}
	var products []api.Product
	if err := decodeResponse(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByCategory returns the products belonging to one category.
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID int64) ([]api.Product, error) {
	path := fmt.Sprintf("/products/categories/%d/products/", categoryID)
	raw, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get category products request failed: %w", err)
	}
	var products []api.Product
	if err := decodeResponse(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*api.Product, error) {
	path := fmt.Sprintf("/products/products/%d/", productID)
	raw, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	var product api.Product
	if err := decodeResponse(raw, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetCart returns the authenticated user's cart.
func (c *Client) GetCart(ctx context.Context) (*api.Cart, error) {
	raw, err := c.Get(ctx, "/cart/")
	if err != nil {
		return nil, fmt.Errorf("get cart request failed: %w", err)
	}
	var cart api.Cart
	if err := decodeResponse(raw, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds quantity units of a product to the cart.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	req := api.AddToCartRequest{ProductID: productID, Quantity: quantity}
	if _, err := c.Post(ctx, "/cart/add/", req); err != nil {
		return fmt.Errorf("add to cart request failed: %w", err)
	}
	return nil
}

// UpdateCartItem changes the quantity of one cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	path := fmt.Sprintf("/cart/update/%d/", itemID)
	if _, err := c.Put(ctx, path, api.UpdateCartItemRequest{Quantity: quantity}); err != nil {
		return fmt.Errorf("update cart item request failed: %w", err)
	}
	return nil
}

// RemoveFromCart removes one cart line.
func (c *Client) RemoveFromCart(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/cart/remove/%d/", itemID)
	if _, err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("remove from cart request failed: %w", err)
	}
	return nil
}

// GetOrders returns the authenticated user's order history.
func (c *Client) GetOrders(ctx context.Context) ([]api.Order, error) {
	raw, err := c.Get(ctx, "/orders/")
	if err != nil {
		return nil, fmt.Errorf("get orders request failed: %w", err)
	}
	var orders []api.Order
	if err := decodeResponse(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder checks out the current cart.
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error) {
	raw, err := c.Post(ctx, "/orders/create/", req)
	if err != nil {
		return nil, fmt.Errorf("create order request failed: %w", err)
	}
	var order api.Order
	if err := decodeResponse(raw, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder returns a single order from the user's history.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*api.Order, error) {
	path := fmt.Sprintf("/orders/%d/", orderID)
	raw, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get order request failed: %w", err)
	}
	var order api.Order
	if err := decodeResponse(raw, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
