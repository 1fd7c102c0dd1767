package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"shopqa/internal/models"
	"shopqa/internal/repositories"
	"shopqa/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Put("/:id/stock", h.HandleUpdateStock)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve products",
		})
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleUpdateStock overwrites the stock of a product.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	// Stock is a pointer so a missing field can be told apart from an
	// explicit zero.
	var body struct {
		Stock *int `json:"stock"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing stock update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if body.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Stock is required",
		})
	}

	if err := h.service.UpdateStock(uint(id), *body.Stock); err != nil {
		var nf *repositories.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error updating stock for product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update product stock",
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Product stock updated successfully",
		"new_stock": *body.Stock,
	})
}
