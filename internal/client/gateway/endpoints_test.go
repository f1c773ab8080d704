package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akodina/shopfront/pkg/api"
)

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)
		assert.Equal(t, "hunter2hunter2", req.Password)

		resp := api.AuthResponse{
			Access:  "access-token",
			Refresh: "refresh-token",
			User:    api.User{ID: 1, Email: "ada@example.com", FirstName: "Ada", Role: "USER"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	resp, err := client.Login(context.Background(), "ada@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.Access)
	assert.Equal(t, "refresh-token", resp.Refresh)
	assert.Equal(t, "Ada", resp.User.FirstName)
}

func TestClient_GetCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/", r.URL.Path)
		cart := api.Cart{
			ID: 3,
			Items: []api.CartItem{
				{ID: 10, Product: api.Product{ID: 7, Name: "Mug"}, Quantity: 2, Subtotal: 17.98},
				{ID: 11, Product: api.Product{ID: 8, Name: "Pen"}, Quantity: 1, Subtotal: 2.50},
			},
		}
		_ = json.NewEncoder(w).Encode(cart)
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	cart, err := client.GetCart(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "Mug", cart.Items[0].Product.Name)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestClient_AddToCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/add/", r.URL.Path)

		var req api.AddToCartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.ProductID)
		assert.Equal(t, 3, req.Quantity)

		_, _ = w.Write([]byte(`{"message":"added"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	err := client.AddToCart(context.Background(), 7, 3)
	require.NoError(t, err)
}

func TestClient_CartItemPaths(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})
	ctx := context.Background()

	require.NoError(t, client.UpdateCartItem(ctx, 42, 5))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/cart/update/42/", gotPath)

	require.NoError(t, client.RemoveFromCart(ctx, 42))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart/remove/42/", gotPath)
}

func TestClient_GetProductsByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories/4/products/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]api.Product{{ID: 1, Name: "Lamp", Price: 25}})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	products, err := client.GetProductsByCategory(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
}

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/create/", r.URL.Path)

		var req api.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1 Main St", req.ShippingAddress)

		_ = json.NewEncoder(w).Encode(api.Order{ID: 100, OrderStatus: "PENDING", Total: 20.48})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	order, err := client.CreateOrder(context.Background(), api.CreateOrderRequest{
		ShippingAddress: "1 Main St",
		City:            "Springfield",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, "PENDING", order.OrderStatus)
}

func TestClient_DecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	_, err := client.GetCart(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
