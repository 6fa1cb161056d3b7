package services

import (
	"errors"

	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DiscountPolicy computes the discount for an order as a pure function of the
// account and the subtotal. The engine clamps the result to [0, subtotal].
type DiscountPolicy func(user *models.User, subtotal decimal.Decimal) decimal.Decimal

// PercentageVIPDiscount gives VIP accounts a fixed percentage off the
// subtotal, rounded to cents. Everyone else pays full price.
func PercentageVIPDiscount(percent int64) DiscountPolicy {
	rate := decimal.NewFromInt(percent).Div(decimal.NewFromInt(100))
	return func(user *models.User, subtotal decimal.Decimal) decimal.Decimal {
		if user.Role != models.RoleVIP {
			return decimal.Zero
		}
		return subtotal.Mul(rate).Round(2)
	}
}

// OrderLineRequest is one cart line as sent by the client: dish id and
// quantity only. Prices and VIP eligibility are always recomputed server-side.
type OrderLineRequest struct {
	DishID   uint `json:"dish_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// VIPStatus reports the account's role after an order and whether that order
// just triggered the promotion.
type VIPStatus struct {
	Role         models.UserRole `json:"role"`
	JustPromoted bool            `json:"just_promoted"`
}

// OrderService validates a cart against the catalog and the user directory,
// prices it, settles it against the wallet and persists the order. The debit,
// the order row, the spend/order counters and the VIP evaluation commit as
// one atomic unit under the user's lock.
type OrderService struct {
	db       *gorm.DB
	catalog  *CatalogService
	users    *UserService
	wallet   *WalletService
	vip      *VIPEvaluator
	Discount DiscountPolicy
}

func NewOrderService(db *gorm.DB, catalog *CatalogService, users *UserService, wallet *WalletService, vip *VIPEvaluator, discount DiscountPolicy) *OrderService {
	return &OrderService{
		db:       db,
		catalog:  catalog,
		users:    users,
		wallet:   wallet,
		vip:      vip,
		Discount: discount,
	}
}

// PlaceOrder runs the full pipeline: account gates, cart validation, pricing
// with snapshot unit prices, discount, wallet debit, persistence and VIP
// evaluation. Every precondition is checked before any state is mutated; on
// any error nothing is committed.
func (s *OrderService) PlaceOrder(userID uint, items []OrderLineRequest) (*models.Order, *VIPStatus, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, newError(KindAccountInactive, "account is deactivated")
	}
	if user.IsBlacklisted {
		return nil, nil, newError(KindAccountBlacklisted, "account is blacklisted")
	}
	if len(items) == 0 {
		return nil, nil, newError(KindInvalidInput, "order must contain at least one item")
	}

	subtotal := decimal.Zero
	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, nil, newError(KindInvalidInput, "quantity must be >= 1 for dish %d", item.DishID)
		}
		dish, err := s.catalog.Get(item.DishID)
		if err != nil {
			return nil, nil, err
		}
		if dish.IsVIPOnly && !user.Role.CanOrderVIPDishes() {
			return nil, nil, newError(KindVIPRequired, "dish %q is for VIP members only", dish.Name)
		}
		subtotal = subtotal.Add(dish.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		lines = append(lines, models.OrderItem{
			DishID:    dish.ID,
			Quantity:  item.Quantity,
			UnitPrice: dish.Price,
			Name:      dish.Name,
		})
	}

	discount := s.Discount(user, subtotal)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	total := subtotal.Sub(discount)

	mu := s.wallet.locks.lock(user.ID)
	defer mu.Unlock()

	var order models.Order
	var justPromoted bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// re-read under the lock so the debit sees the current balance
		if err := tx.First(user, user.ID).Error; err != nil {
			return err
		}
		if err := s.wallet.debit(tx, user, total); err != nil {
			return err
		}

		order = models.Order{
			CustomerID:      user.ID,
			Status:          models.StatusPaid,
			TotalPrice:      total,
			DiscountApplied: discount,
			Items:           lines,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		user.TotalSpent = user.TotalSpent.Add(total)
		user.OrderCount++
		if err := tx.Model(user).Updates(map[string]interface{}{
			"total_spent": user.TotalSpent,
			"order_count": user.OrderCount,
		}).Error; err != nil {
			return err
		}

		promoted, err := s.vip.Evaluate(tx, user)
		if err != nil {
			return err
		}
		justPromoted = promoted
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &order, &VIPStatus{Role: user.Role, JustPromoted: justPromoted}, nil
}

// Get resolves an order with its items
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "order %d not found", orderID)
		}
		return nil, err
	}
	return &order, nil
}

// ListForUser returns a user's orders, newest first
func (s *OrderService) ListForUser(userID uint) ([]models.Order, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := s.db.Preload("Items").
		Where("customer_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll returns every order in the system, newest first
func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").
		Order("created_at desc, id desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
