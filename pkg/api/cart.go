package api

// CartItem is a single line of the server-side cart.
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Cart is the cart-read response. Items is ordered by the server.
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total,omitempty"`
}

// AddToCartRequest is the body of the add-to-cart call.
type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemRequest is the body of the cart line quantity update.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
