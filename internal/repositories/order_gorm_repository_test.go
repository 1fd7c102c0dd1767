package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopqa/internal/database"
	"shopqa/internal/models"
	"shopqa/internal/repositories"
)

// newTestDB opens a uniquely named in-memory SQLite database with the
// schema migrated and the six-product catalog seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, repositories.NewGORMUserRepository(db).Create(user))
	return user
}

func newOrder(userID uint) *models.Order {
	return &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    models.StatusCompleted,
		CreatedAt: time.Now(),
	}
}

func TestOrderPlace_Success(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "test_buyer")
	repo := repositories.NewGORMOrderRepository(db)

	order := newOrder(user.ID)
	err := repo.Place(order, []models.LineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)

	// Total is the sum of unit price times quantity across the lines.
	assert.InDelta(t, 2*29.99+9.99, order.TotalAmount, 0.001)

	stock, err := database.ProductStock(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, stock)
	stock, err = database.ProductStock(db, 2)
	require.NoError(t, err)
	assert.Equal(t, 14, stock)

	count, err := database.OrderItemCount(db, order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestOrderPlace_SequentialOrdersDecrementStock(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "test_buyer")
	repo := repositories.NewGORMOrderRepository(db)

	// Two orders of 2 and 3 units against product 1 (stock 10) leave 5.
	require.NoError(t, repo.Place(newOrder(user.ID), []models.LineItem{{ProductID: 1, Quantity: 2}}))
	require.NoError(t, repo.Place(newOrder(user.ID), []models.LineItem{{ProductID: 1, Quantity: 3}}))

	stock, err := database.ProductStock(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, stock)
}

func TestOrderPlace_InsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "test_buyer")
	repo := repositories.NewGORMOrderRepository(db)

	// First line would succeed on its own; the short second line must
	// reject the whole order with zero side effects.
	order := newOrder(user.ID)
	err := repo.Place(order, []models.LineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 4, Quantity: 6}, // stock is 5
	})
	require.Error(t, err)

	var stockErr *repositories.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.EqualValues(t, 4, stockErr.ProductID)
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)

	stock, err := database.ProductStock(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, stock, "stock of the passing line must not change")
	stock, err = database.ProductStock(db, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, stock)

	count, err := database.OrderItemCount(db, order.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderPlace_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "test_buyer")
	repo := repositories.NewGORMOrderRepository(db)

	err := repo.Place(newOrder(user.ID), []models.LineItem{{ProductID: 999, Quantity: 1}})
	require.Error(t, err)

	var nf *repositories.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Entity)
	assert.EqualValues(t, 999, nf.ID)
}

func TestOrderPlace_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	err := repo.Place(newOrder(99999), []models.LineItem{{ProductID: 1, Quantity: 1}})
	require.Error(t, err)

	var nf *repositories.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Entity)

	stock, err := database.ProductStock(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, stock)
}

func TestOrderGetDetail_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "test_buyer")
	repo := repositories.NewGORMOrderRepository(db)

	order := newOrder(user.ID)
	require.NoError(t, repo.Place(order, []models.LineItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 3, Quantity: 2},
	}))

	detail, err := repo.GetDetail(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, detail.ID)
	assert.Equal(t, user.ID, detail.UserID)
	assert.Equal(t, "test_buyer", detail.Username)
	assert.Equal(t, models.StatusCompleted, detail.Status)
	assert.InDelta(t, order.TotalAmount, detail.TotalAmount, 0.001)
	require.Len(t, detail.Items, 2)

	first := detail.Items[0]
	assert.EqualValues(t, 1, first.ProductID)
	assert.Equal(t, "Sauce Labs Backpack", first.ProductName)
	assert.Equal(t, 1, first.Quantity)
	assert.InDelta(t, 29.99, first.Price, 0.001)
}

func TestOrderGetDetail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	detail, err := repo.GetDetail("non-existent-order-id")
	require.Error(t, err)
	assert.Nil(t, detail)

	var nf *repositories.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order", nf.Entity)
}
