package handlers

import (
	"net/http"

	"github.com/oumarknt31/Restaurant-ai-system/middleware"
	"github.com/oumarknt31/Restaurant-ai-system/services"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	Items []services.OrderLineRequest `json:"items" binding:"required"`
}

// PlaceOrder validates the cart, settles it against the wallet and creates
// the order (customer/vip only)
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, vipStatus, err := Orders.PlaceOrder(middleware.GetUserID(c), req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order created",
		"order":      order,
		"vip_status": vipStatus,
	})
}

// GetMyOrders returns all orders for the logged-in user, newest first
func GetMyOrders(c *gin.Context) {
	orders, err := Orders.ListForUser(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
