package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"shopqa/internal/models"
	"shopqa/internal/repositories"
	"shopqa/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleCreateOrder places a new order. Validation, total computation,
// persistence and stock decrements happen in one transaction; a failure
// on any line writes nothing.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var body struct {
		UserID *uint             `json:"user_id"`
		Items  []models.LineItem `json:"items"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if body.UserID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}
	if len(body.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "items is required",
		})
	}

	order, err := h.service.PlaceOrder(*body.UserID, body.Items)
	if err != nil {
		var stockErr *repositories.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Not enough stock for product %d", stockErr.ProductID),
			})
		}
		var nf *repositories.NotFoundError
		if errors.As(err, &nf) {
			switch nf.Entity {
			case "product":
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": fmt.Sprintf("Product %v not found", nf.ID),
				})
			case "user":
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": fmt.Sprintf("User %v not found", nf.ID),
				})
			}
		}
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
		"message":      "Order created successfully",
	})
}

// HandleGetOrderByID retrieves an order joined with the placing user's
// username and the order's items.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	detail, err := h.service.GetOrder(orderID)
	if err != nil {
		var nf *repositories.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve order",
		})
	}
	if detail.Items == nil {
		detail.Items = []models.OrderItemDetail{}
	}
	return c.JSON(detail)
}
