package services

import (
	"errors"

	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService is the single owner of deposit_balance. Every mutation goes
// through an atomic check-and-decrement (or unconditional credit) under the
// user's lock, so two concurrent debits can never both succeed past the
// balance.
type WalletService struct {
	db    *gorm.DB
	locks *userLocks
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db, locks: &userLocks{}}
}

// Credit adds funds to a user's balance and returns the updated account.
// The amount must be strictly positive.
func (s *WalletService) Credit(userID uint, amount decimal.Decimal) (*models.User, error) {
	if !amount.IsPositive() {
		return nil, newError(KindInvalidInput, "amount must be > 0")
	}

	mu := s.locks.lock(userID)
	defer mu.Unlock()

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(KindNotFound, "user %d not found", userID)
			}
			return err
		}
		if !user.IsActive {
			return newError(KindAccountInactive, "account is deactivated")
		}
		if user.IsBlacklisted {
			return newError(KindAccountBlacklisted, "account is blacklisted")
		}
		user.DepositBalance = user.DepositBalance.Add(amount)
		return tx.Model(&user).Update("deposit_balance", user.DepositBalance).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Debit atomically checks the balance and subtracts the amount, returning the
// updated account. Fails with InsufficientFunds and no mutation otherwise.
func (s *WalletService) Debit(userID uint, amount decimal.Decimal) (*models.User, error) {
	if amount.IsNegative() {
		return nil, newError(KindInvalidInput, "amount must be >= 0")
	}

	mu := s.locks.lock(userID)
	defer mu.Unlock()

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(KindNotFound, "user %d not found", userID)
			}
			return err
		}
		return s.debit(tx, &user, amount)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// debit applies the check-and-decrement against tx and updates user in
// place. The caller must hold the user's lock.
func (s *WalletService) debit(tx *gorm.DB, user *models.User, amount decimal.Decimal) error {
	if user.DepositBalance.LessThan(amount) {
		return newError(KindInsufficientFunds,
			"insufficient balance: need %s, have %s", amount, user.DepositBalance)
	}
	user.DepositBalance = user.DepositBalance.Sub(amount)
	return tx.Model(user).Update("deposit_balance", user.DepositBalance).Error
}
