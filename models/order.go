package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on_the_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the enumerated order statuses
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPaid, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerID      uint            `json:"customer_id" gorm:"not null;index"`
	Customer        User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	DiscountApplied decimal.Decimal `json:"discount_applied" gorm:"type:decimal(10,2);not null;default:0"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	OrderID  uint `json:"order_id" gorm:"not null;index"`
	DishID   uint `json:"dish_id" gorm:"not null"`
	Dish     Dish `json:"dish,omitempty" gorm:"foreignKey:DishID"`
	Quantity int  `json:"quantity" gorm:"not null"`
	// UnitPrice is a snapshot of the dish price at order time; later catalog
	// price changes never touch it.
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Name      string          `json:"name"`
}
