package models

import "time"

// Order statuses. Orders are written as "completed" when placement succeeds;
// "pending" is the schema default and never observed through the API.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Order represents a placed order.
type Order struct {
	ID          string    `json:"order_id" gorm:"primaryKey;type:varchar(36)"`
	UserID      uint      `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one persisted line of an order. Price is the unit price
// captured at the time the order was placed.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

// LineItem is one (product, quantity) pair within an order request.
type LineItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderItemDetail is an order item joined with the product name,
// as returned when fetching an order by id.
type OrderItemDetail struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderDetail is an order joined with the placing user's username
// and the order's items.
type OrderDetail struct {
	Order
	Username string            `json:"username"`
	Items    []OrderItemDetail `json:"items" gorm:"-"`
}
