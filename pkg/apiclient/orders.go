package apiclient

import (
	"fmt"
	"net/http"

	"shopqa/internal/models"
)

// OrderRequest is the request body for order placement.
type OrderRequest struct {
	UserID uint              `json:"user_id"`
	Items  []models.LineItem `json:"items"`
}

// OrdersAPI wraps the /orders endpoints.
type OrdersAPI struct {
	client *Client
}

// NewOrdersAPI creates an OrdersAPI on top of the given client.
func NewOrdersAPI(client *Client) *OrdersAPI {
	return &OrdersAPI{client: client}
}

// CreateOrder places an order.
func (a *OrdersAPI) CreateOrder(order OrderRequest) (*http.Response, error) {
	return a.client.Post("/orders", order)
}

// GetOrderByID fetches an order by id.
func (a *OrdersAPI) GetOrderByID(orderID string) (*http.Response, error) {
	return a.client.Get(fmt.Sprintf("/orders/%s", orderID))
}

// CreateSimpleOrder places a single-line order, the common case in tests.
func (a *OrdersAPI) CreateSimpleOrder(userID, productID uint, quantity int) (*http.Response, error) {
	return a.CreateOrder(OrderRequest{
		UserID: userID,
		Items: []models.LineItem{
			{ProductID: productID, Quantity: quantity},
		},
	})
}
