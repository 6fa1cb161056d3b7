package services

import (
	"errors"
	"strings"

	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService is the read-only dish store the order engine prices against.
// Dish creation is a chef/manager action and never touches existing rows, so
// order-time snapshots stay stable.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Get resolves a dish by ID
func (s *CatalogService) Get(dishID uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "dish %d not found", dishID)
		}
		return nil, err
	}
	return &dish, nil
}

// List returns the full menu
func (s *CatalogService) List() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.db.Order("id asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// ListVisibleTo returns the menu filtered for a role: VIP-only dishes are
// hidden from roles that cannot order them.
func (s *CatalogService) ListVisibleTo(role models.UserRole) ([]models.Dish, error) {
	q := s.db.Order("id asc")
	if !role.CanOrderVIPDishes() {
		q = q.Where("is_vip_only = ?", false)
	}
	var dishes []models.Dish
	if err := q.Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// CreateDish adds a dish to the catalog. Only chefs and managers may do so.
func (s *CatalogService) CreateDish(actor *models.User, name, description string, price decimal.Decimal, imageURL string, isVIPOnly bool) (*models.Dish, error) {
	if !actor.Role.CanModerate() {
		return nil, newError(KindForbidden, "only chefs and managers can create dishes")
	}
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, newError(KindInvalidInput, "name and description are required")
	}
	if !price.IsPositive() {
		return nil, newError(KindInvalidInput, "price must be > 0")
	}

	dish := models.Dish{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		IsVIPOnly:   isVIPOnly,
		ChefID:      &actor.ID,
	}
	if err := s.db.Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}
