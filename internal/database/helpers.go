package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopqa/internal/models"
)

// Direct-database helpers used by the integration suites to assert on
// persisted state independently of the HTTP surface.

// UserByUsername returns the user with the given username, or nil if absent.
func UserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	return &user, nil
}

// UserCount returns the number of rows in the users table.
func UserCount(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// ProductStock returns the current stock of a product.
func ProductStock(db *gorm.DB, productID uint) (int, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return 0, fmt.Errorf("failed to read stock for product %d: %w", productID, err)
	}
	return product.Stock, nil
}

// SetProductStock overwrites the stock of a product.
func SetProductStock(db *gorm.DB, productID uint, stock int) error {
	err := db.Model(&models.Product{}).Where("id = ?", productID).Update("stock", stock).Error
	if err != nil {
		return fmt.Errorf("failed to set stock for product %d: %w", productID, err)
	}
	return nil
}

// OrderItemCount returns the number of item rows attached to an order.
func OrderItemCount(db *gorm.DB, orderID string) (int64, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count items for order %s: %w", orderID, err)
	}
	return count, nil
}

// OrdersByUser returns all orders placed by a user.
func OrdersByUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// CleanupTestData deletes all orders and order items, plus every user whose
// username carries the test prefix. The seeded catalog is left in place.
func CleanupTestData(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	if err := db.Where("username LIKE ?", "test%").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete test users: %w", err)
	}
	return nil
}

// ResetProductStocks restores every seeded product to its initial stock.
func ResetProductStocks(db *gorm.DB) error {
	for _, p := range seedCatalog {
		if err := SetProductStock(db, p.ID, p.Stock); err != nil {
			return err
		}
	}
	return nil
}
