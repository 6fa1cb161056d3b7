package handlers

import (
	"net/http"

	"github.com/oumarknt31/Restaurant-ai-system/middleware"
	"github.com/oumarknt31/Restaurant-ai-system/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetMenu returns the full menu (public)
func GetMenu(c *gin.Context) {
	dishes, err := Catalog.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

type CreateDishRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	IsVIPOnly   bool            `json:"is_vip_only"`
}

// CreateDish adds a dish to the catalog (chef/manager only)
func CreateDish(c *gin.Context) {
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, err := Users.Get(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	dish, err := Catalog.CreateDish(actor, req.Name, req.Description, req.Price, req.ImageURL, req.IsVIPOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish created", "dish": dish})
}

// GetStateMachineInfo documents the order status transitions
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transitions": statemachine.GetAllTransitions()})
}
