package services_test

import (
	"testing"

	"github.com/oumarknt31/Restaurant-ai-system/models"
	"github.com/oumarknt31/Restaurant-ai-system/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGetAndList(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.Get(7)
	assert.True(t, services.IsKind(err, services.KindNotFound))

	dish := createDish(t, f.db, "Gnocchi", "11.50", false)
	got, err := f.catalog.Get(dish.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gnocchi", got.Name)
	assert.Equal(t, "11.50", got.Price.StringFixed(2))

	createDish(t, f.db, "Secret Menu", "60", true)
	all, err := f.catalog.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := f.catalog.ListVisibleTo(models.RoleCustomer)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Gnocchi", visible[0].Name)
}

func TestCreateDishPermissions(t *testing.T) {
	f := newFixture(t)
	price := decimal.NewFromInt(14)

	customer := createUser(t, f.db, models.RoleCustomer, "0")
	_, err := f.catalog.CreateDish(customer, "Tart", "Lemon tart", price, "", false)
	assert.True(t, services.IsKind(err, services.KindForbidden))

	chef := createUser(t, f.db, models.RoleChef, "0")
	dish, err := f.catalog.CreateDish(chef, "Tart", "Lemon tart", price, "", false)
	require.NoError(t, err)
	assert.Equal(t, chef.ID, *dish.ChefID)
}

func TestCreateDishValidation(t *testing.T) {
	f := newFixture(t)
	chef := createUser(t, f.db, models.RoleChef, "0")

	_, err := f.catalog.CreateDish(chef, "", "desc", decimal.NewFromInt(5), "", false)
	assert.True(t, services.IsKind(err, services.KindInvalidInput))

	_, err = f.catalog.CreateDish(chef, "Tart", "desc", decimal.Zero, "", false)
	assert.True(t, services.IsKind(err, services.KindInvalidInput))
}
