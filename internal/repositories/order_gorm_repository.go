package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopqa/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Place validates and persists an order as one unit of work: the user must
// exist, every product must exist and have sufficient stock, and each line
// captures the product's unit price exactly once. Any failure rolls the
// transaction back with zero side effects.
func (r *GORMOrderRepository) Place(order *models.Order, lines []models.LineItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, order.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "user", ID: order.UserID}
			}
			return fmt.Errorf("failed to load user %d: %w", order.UserID, err)
		}

		var total float64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entity: "product", ID: line.ProductID}
				}
				return fmt.Errorf("failed to load product %d: %w", line.ProductID, err)
			}
			if product.Stock < line.Quantity {
				return &InsufficientStockError{
					ProductID: product.ID,
					Requested: line.Quantity,
					Available: product.Stock,
				}
			}

			total += product.Price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})

			res := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %d: %w", product.ID, res.Error)
			}
		}

		order.TotalAmount = total
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		return nil
	})
}

// GetDetail retrieves an order joined with the placing user's username and
// all of its items joined with product names.
func (r *GORMOrderRepository) GetDetail(id string) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	err := r.db.Table("orders").
		Select("orders.id, orders.user_id, orders.total_amount, orders.status, orders.created_at, users.username").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", id).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: id}
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	err = r.db.Table("order_items").
		Select("order_items.product_id, products.name AS product_name, order_items.quantity, order_items.price").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", id).
		Scan(&detail.Items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get items for order %s: %w", id, err)
	}
	return &detail, nil
}
