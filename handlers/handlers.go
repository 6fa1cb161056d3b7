package handlers

import (
	"net/http"

	"github.com/oumarknt31/Restaurant-ai-system/config"
	"github.com/oumarknt31/Restaurant-ai-system/services"
	"github.com/oumarknt31/Restaurant-ai-system/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shared service instances, wired by Init
var (
	Users       *services.UserService
	Catalog     *services.CatalogService
	Wallet      *services.WalletService
	Orders      *services.OrderService
	Moderation  *services.ModerationService
	Recommender *services.RecommendService
	Assistant   *services.AssistantService
)

// Init builds the service graph on top of the given DB handle
func Init(db *gorm.DB) {
	Users = services.NewUserService(db)
	Catalog = services.NewCatalogService(db)
	Wallet = services.NewWalletService(db)
	vip := services.NewVIPEvaluator(decimal.NewFromFloat(config.VIPSpendThreshold), config.VIPOrderThreshold)
	Orders = services.NewOrderService(db, Catalog, Users, Wallet, vip,
		services.PercentageVIPDiscount(config.VIPDiscountPercent))
	Moderation = services.NewModerationService(db)
	Recommender = services.NewRecommendService(Users, Catalog)
	Assistant = services.NewAssistantService(Users, Catalog, config.OllamaURL, config.OllamaModel)
}

// respondServiceError maps a service error kind to an HTTP status and emits
// the kind alongside the human-readable message.
func respondServiceError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	if kind == "" {
		utils.ErrorLogger.WithField("path", c.Request.URL.Path).Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindInvalidInput, services.KindInsufficientFunds:
		status = http.StatusBadRequest
	case services.KindForbidden, services.KindAccountInactive,
		services.KindAccountBlacklisted, services.KindVIPRequired:
		status = http.StatusForbidden
	case services.KindIllegalTransition:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": string(kind)})
}
