package services

import (
	"errors"

	"github.com/oumarknt31/Restaurant-ai-system/models"
	"github.com/oumarknt31/Restaurant-ai-system/statemachine"

	"gorm.io/gorm"
)

// ModerationService applies administrative state transitions to orders and
// users. Every mutation is gated on the actor's role and applied fully or not
// at all.
type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// UserStatusPatch carries the optional flag updates for SetUserStatus.
// A nil field is left unchanged.
type UserStatusPatch struct {
	IsActive      *bool `json:"is_active"`
	IsBlacklisted *bool `json:"is_blacklisted"`
}

// SetOrderStatus moves an order along the status state machine. The update is
// a compare-and-swap against the status the transition was checked from, so a
// concurrent transition on the same order makes the stale request fail with
// IllegalTransition instead of silently applying.
func (s *ModerationService) SetOrderStatus(orderID uint, newStatus models.OrderStatus, actor *models.User) (*models.Order, error) {
	if !actor.Role.CanModerate() {
		return nil, newError(KindForbidden, "only managers and chefs can change order status")
	}
	if !models.ValidStatus(newStatus) {
		return nil, newError(KindInvalidInput, "unknown order status %q", newStatus)
	}

	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "order %d not found", orderID)
		}
		return nil, err
	}

	if !statemachine.CanTransition(order.Status, newStatus) {
		return nil, newError(KindIllegalTransition,
			"cannot move order from %s to %s", order.Status, newStatus)
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", newStatus)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// order changed underneath us between the read and the swap
		return nil, newError(KindIllegalTransition,
			"order %d changed concurrently, transition to %s not applied", order.ID, newStatus)
	}

	order.Status = newStatus
	return &order, nil
}

// SetUserStatus updates only the active/blacklist flags present in the patch
func (s *ModerationService) SetUserStatus(userID uint, patch UserStatusPatch, actor *models.User) (*models.User, error) {
	if !actor.Role.CanModerate() {
		return nil, newError(KindForbidden, "only managers and chefs can change user status")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "user %d not found", userID)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
		updates["is_active"] = *patch.IsActive
	}
	if patch.IsBlacklisted != nil {
		user.IsBlacklisted = *patch.IsBlacklisted
		updates["is_blacklisted"] = *patch.IsBlacklisted
	}
	if len(updates) == 0 {
		return &user, nil
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserRole changes an account's role. Manager-only.
func (s *ModerationService) SetUserRole(userID uint, newRole models.UserRole, actor *models.User) (*models.User, error) {
	if !actor.Role.CanAssignRoles() {
		return nil, newError(KindForbidden, "only managers can change user roles")
	}
	if !models.ValidRole(newRole) {
		return nil, newError(KindInvalidInput, "unknown role %q", newRole)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "user %d not found", userID)
		}
		return nil, err
	}

	if err := s.db.Model(&user).Update("role", newRole).Error; err != nil {
		return nil, err
	}
	user.Role = newRole
	return &user, nil
}
