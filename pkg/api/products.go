package api

// Category is a product category as returned by the catalog endpoints.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"` // URL, set server-side from the uploaded file
}

// Product is a catalog product.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    int64   `json:"category"`
	Image       string  `json:"image,omitempty"`
}
