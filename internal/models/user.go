package models

import "time"

// User represents a registered user of the mock store.
// Users are created by tests and never updated or deleted by the server.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string    `json:"last_name" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
