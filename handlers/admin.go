package handlers

import (
	"net/http"
	"strconv"

	"github.com/oumarknt31/Restaurant-ai-system/middleware"
	"github.com/oumarknt31/Restaurant-ai-system/models"
	"github.com/oumarknt31/Restaurant-ai-system/services"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func actor(c *gin.Context) (*models.User, bool) {
	user, err := Users.Get(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	return user, true
}

// AdminListUsers returns all users with their stats
func AdminListUsers(c *gin.Context) {
	users, err := Users.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminListOrders returns all orders in the system
func AdminListOrders(c *gin.Context) {
	orders, err := Orders.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along the status state machine
func UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	act, ok := actor(c)
	if !ok {
		return
	}

	order, err := Moderation.SetOrderStatus(orderID, req.Status, act)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// UpdateUserStatus patches a user's active/blacklist flags
func UpdateUserStatus(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch services.UserStatusPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	act, ok := actor(c)
	if !ok {
		return
	}

	user, err := Moderation.SetUserStatus(userID, patch, act)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "user": user})
}

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

// UpdateUserRole changes a user's role (manager only)
func UpdateUserRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	act, ok := actor(c)
	if !ok {
		return
	}

	user, err := Moderation.SetUserRole(userID, req.Role, act)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User role updated", "user": user})
}
