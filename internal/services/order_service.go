package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"shopqa/internal/models"
	"shopqa/internal/repositories"
)

// EventPublisher publishes order events to a message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	events    EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil, in which
// case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
	}
}

// PlaceOrder creates a new order for the given user and line items. The
// repository performs validation and persistence in one transaction; a
// rejected order leaves no partial state behind.
func (s *OrderService) PlaceOrder(userID uint, lines []models.LineItem) (*models.Order, error) {
	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    models.StatusCompleted,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Place(order, lines); err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)
	return order, nil
}

// GetOrder retrieves an order by its ID, joined with the placing user's
// username and the order's items.
func (s *OrderService) GetOrder(id string) (*models.OrderDetail, error) {
	return s.orderRepo.GetDetail(id)
}

// publishOrderCreated emits an order.created event. Publishing is best
// effort: the order is already committed, so failures are only logged.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.events == nil {
		return
	}

	event := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.events.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}
