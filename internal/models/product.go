package models

// Product represents a catalog item. The catalog is seeded once at startup;
// stock is the only field that ever changes afterwards.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"default:0"`
	Description string  `json:"description"`
}

func (Product) TableName() string { return "products" }
