package api

// OrderItem is a purchased line inside an order.
type OrderItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order as returned by the order history and admin order endpoints.
type Order struct {
	ID          int64       `json:"id"`
	User        *User       `json:"user,omitempty"` // present on admin views only
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	OrderStatus string      `json:"order_status"`
	CreatedAt   string      `json:"created_at"`
}

// CreateOrderRequest is the checkout body. The cart contents are taken
// server-side from the authenticated user's cart.
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zip_code"`
	PhoneNumber     string `json:"phone_number"`
}

// UpdateOrderStatusRequest is the admin order status change body.
type UpdateOrderStatusRequest struct {
	OrderStatus      string `json:"order_status"`
	SendNotification bool   `json:"send_notification"`
}
