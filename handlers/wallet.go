package handlers

import (
	"net/http"

	"github.com/oumarknt31/Restaurant-ai-system/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// Deposit adds funds to the caller's wallet
func Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Wallet.Credit(middleware.GetUserID(c), req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deposit successful",
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"deposit_balance": user.DepositBalance,
		},
	})
}
