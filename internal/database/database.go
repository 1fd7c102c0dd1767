package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopqa/internal/models"
)

// Open connects to the SQLite database at path. Error translation is
// enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates the users, products, orders and order_items tables.
// Existing tables are preserved.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// seedCatalog is the fixed six-product catalog inserted at startup.
var seedCatalog = []models.Product{
	{ID: 1, Name: "Sauce Labs Backpack", Price: 29.99, Stock: 10, Description: "Backpack for the trendy person"},
	{ID: 2, Name: "Sauce Labs Bike Light", Price: 9.99, Stock: 15, Description: "Light that shines bright"},
	{ID: 3, Name: "Sauce Labs Bolt T-Shirt", Price: 15.99, Stock: 20, Description: "Get your testing superhero on"},
	{ID: 4, Name: "Sauce Labs Fleece Jacket", Price: 49.99, Stock: 5, Description: "Keep warm and stylish"},
	{ID: 5, Name: "Sauce Labs Onesie", Price: 7.99, Stock: 8, Description: "For the cutest test automation"},
	{ID: 6, Name: "Test.allTheThings() T-Shirt (Red)", Price: 15.99, Stock: 12, Description: "This classic shirt"},
}

// Seed inserts the reference catalog. Rows that already exist are left
// untouched, so seeding is idempotent across restarts.
func Seed(db *gorm.DB) error {
	products := make([]models.Product, len(seedCatalog))
	copy(products, seedCatalog)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}
