package handlers

import (
	"net/http"

	"github.com/oumarknt31/Restaurant-ai-system/services"

	"github.com/gin-gonic/gin"
)

// Recommend runs the rule-based recommender
func Recommend(c *gin.Context) {
	var req services.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := Recommender.Recommend(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(recs), "recommendations": recs})
}

type ChatRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Chat forwards a free-text question to the LLM assistant
func Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := Assistant.Chat(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
