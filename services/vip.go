package services

import (
	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VIPEvaluator decides, after each completed order, whether a customer
// crosses into VIP status. Evaluating an already-VIP (or staff) account is a
// no-op.
type VIPEvaluator struct {
	SpendThreshold decimal.Decimal
	OrderThreshold int
}

func NewVIPEvaluator(spendThreshold decimal.Decimal, orderThreshold int) *VIPEvaluator {
	return &VIPEvaluator{SpendThreshold: spendThreshold, OrderThreshold: orderThreshold}
}

// Evaluate promotes user to vip when either threshold is crossed and reports
// whether a promotion just happened. It writes through tx so the promotion
// commits in the same atomic unit as the order that triggered it.
func (e *VIPEvaluator) Evaluate(tx *gorm.DB, user *models.User) (bool, error) {
	if user.Role != models.RoleCustomer {
		return false, nil
	}
	if user.TotalSpent.LessThan(e.SpendThreshold) && user.OrderCount < e.OrderThreshold {
		return false, nil
	}
	user.Role = models.RoleVIP
	if err := tx.Model(user).Update("role", models.RoleVIP).Error; err != nil {
		return false, err
	}
	return true, nil
}
