package repositories

import "shopqa/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Place persists the order, its items and the stock decrements in a
	// single transaction, filling in order.TotalAmount from the unit
	// prices read inside the transaction. A validation failure on any
	// line rolls back the whole attempt.
	Place(order *models.Order, lines []models.LineItem) error
	// GetDetail retrieves an order joined with the placing user's
	// username and its items joined with product names.
	GetDetail(id string) (*models.OrderDetail, error)
}
