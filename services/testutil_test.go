package services_test

import (
	"fmt"
	"testing"

	"github.com/oumarknt31/Restaurant-ai-system/models"
	"github.com/oumarknt31/Restaurant-ai-system/services"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one named in-memory database per test; a single connection keeps
	// concurrent test traffic from observing separate databases
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

type fixture struct {
	db      *gorm.DB
	users   *services.UserService
	catalog *services.CatalogService
	wallet  *services.WalletService
	orders  *services.OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	users := services.NewUserService(db)
	catalog := services.NewCatalogService(db)
	wallet := services.NewWalletService(db)
	vip := services.NewVIPEvaluator(decimal.NewFromInt(200), 5)
	orders := services.NewOrderService(db, catalog, users, wallet, vip,
		services.PercentageVIPDiscount(5))
	return &fixture{db: db, users: users, catalog: catalog, wallet: wallet, orders: orders}
}

func createUser(t *testing.T, db *gorm.DB, role models.UserRole, balance string) *models.User {
	t.Helper()
	user := &models.User{
		Name:           "Test " + string(role),
		Email:          fmt.Sprintf("%s-%d@example.com", role, nextID()),
		PasswordHash:   "x",
		Role:           role,
		DepositBalance: decimal.RequireFromString(balance),
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createDish(t *testing.T, db *gorm.DB, name, price string, vipOnly bool) *models.Dish {
	t.Helper()
	dish := &models.Dish{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		IsVIPOnly:   vipOnly,
	}
	require.NoError(t, db.Create(dish).Error)
	return dish
}

var idCounter int

func nextID() int {
	idCounter++
	return idCounter
}

func reload(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()
	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	return &fresh
}
