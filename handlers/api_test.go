package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oumarknt31/Restaurant-ai-system/config"
	"github.com/oumarknt31/Restaurant-ai-system/handlers"
	"github.com/oumarknt31/Restaurant-ai-system/models"
	"github.com/oumarknt31/Restaurant-ai-system/routes"
	"github.com/oumarknt31/Restaurant-ai-system/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	config.Load()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Dish{}, &models.Order{}, &models.OrderItem{},
	))

	handlers.Init(db)
	r := gin.New()
	routes.SetupRoutes(r)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func register(t *testing.T, r *gin.Engine, name, email string) (uint, string) {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := resp["user"].(map[string]interface{})
	return uint(user["id"].(float64)), resp["token"].(string)
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return resp["token"].(string)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	r, db := setupRouter(t)

	dish := models.Dish{Name: "Pad Thai", Description: "Rice noodles", Price: decimal.RequireFromString("11.25")}
	require.NoError(t, db.Create(&dish).Error)

	_, token := register(t, r, "Nora", "nora@example.com")

	// deposit, then order
	w, resp := doJSON(t, r, http.MethodPost, "/api/wallet/deposit", token, gin.H{"amount": "50"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "50", user["deposit_balance"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"items": []gin.H{{"dish_id": dish.ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := resp["order"].(map[string]interface{})
	assert.Equal(t, "22.5", order["total_price"])
	assert.Equal(t, "paid", order["status"])
	vipStatus := resp["vip_status"].(map[string]interface{})
	assert.Equal(t, false, vipStatus["just_promoted"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["count"])
}

func TestDepositValidationOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	_, token := register(t, r, "Nora", "nora@example.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/wallet/deposit", token, gin.H{"amount": "-5"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", resp["kind"])
}

func TestInsufficientFundsOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	dish := models.Dish{Name: "Wagyu", Description: "Beef", Price: decimal.NewFromInt(200)}
	require.NoError(t, db.Create(&dish).Error)

	_, token := register(t, r, "Nora", "nora@example.com")
	w, resp := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"items": []gin.H{{"dish_id": dish.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient_funds", resp["kind"])
}

func TestModerationOverHTTP(t *testing.T) {
	r, db := setupRouter(t)

	dish := models.Dish{Name: "Pho", Description: "Soup", Price: decimal.NewFromInt(10)}
	require.NoError(t, db.Create(&dish).Error)

	customerID, customerToken := register(t, r, "Cust", "cust@example.com")
	managerID, _ := register(t, r, "Mgr", "mgr@example.com")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", managerID).
		Update("role", models.RoleManager).Error)
	managerToken := login(t, r, "mgr@example.com")

	// place an order to moderate
	doJSON(t, r, http.MethodPost, "/api/wallet/deposit", customerToken, gin.H{"amount": "50"})
	w, resp := doJSON(t, r, http.MethodPost, "/api/orders", customerToken, gin.H{
		"items": []gin.H{{"dish_id": dish.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := int(resp["order"].(map[string]interface{})["id"].(float64))

	// customers cannot reach admin routes at all
	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", orderID),
		customerToken, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", orderID),
		managerToken, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "preparing", resp["order"].(map[string]interface{})["status"])

	// skipping a state is rejected with the machine-checkable kind
	w, resp = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", orderID),
		managerToken, gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "illegal_transition", resp["kind"])

	// flag moderation
	w, resp = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/users/%d/status", customerID),
		managerToken, gin.H{"is_blacklisted": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["user"].(map[string]interface{})["is_blacklisted"])

	// blacklisted account can no longer order
	w, resp = doJSON(t, r, http.MethodPost, "/api/orders", customerToken, gin.H{
		"items": []gin.H{{"dish_id": dish.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "account_blacklisted", resp["kind"])
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r, _ := setupRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
