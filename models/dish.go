package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Dish struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `json:"image_url"`
	IsVIPOnly   bool            `json:"is_vip_only" gorm:"column:is_vip_only;not null;default:false"`
	ChefID      *uint           `json:"chef_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
