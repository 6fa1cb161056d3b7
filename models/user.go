package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVIP      UserRole = "vip"
	RoleChef     UserRole = "chef"
	RoleManager  UserRole = "manager"
	RoleDelivery UserRole = "delivery"
)

// ValidRole reports whether r is one of the enumerated roles
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleVIP, RoleChef, RoleManager, RoleDelivery:
		return true
	}
	return false
}

// CanOrderVIPDishes reports whether the role may order VIP-only dishes
func (r UserRole) CanOrderVIPDishes() bool {
	return r == RoleVIP || r == RoleChef || r == RoleManager
}

// CanModerate reports whether the role may apply moderation actions:
// order status updates, account flags, dish creation.
func (r UserRole) CanModerate() bool {
	return r == RoleManager || r == RoleChef
}

// CanAssignRoles reports whether the role may change another account's role
func (r UserRole) CanAssignRoles() bool {
	return r == RoleManager
}

type User struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	Email          string          `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string          `json:"-" gorm:"not null"`
	Role           UserRole        `json:"role" gorm:"not null;default:'customer'"`
	DepositBalance decimal.Decimal `json:"deposit_balance" gorm:"type:decimal(10,2);not null;default:0"`
	TotalSpent     decimal.Decimal `json:"total_spent" gorm:"type:decimal(10,2);not null;default:0"`
	OrderCount     int             `json:"order_count" gorm:"not null;default:0"`
	Warnings       int             `json:"warnings" gorm:"not null;default:0"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true"`
	IsBlacklisted  bool            `json:"is_blacklisted" gorm:"not null;default:false"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
