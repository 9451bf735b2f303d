package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/chatbot"
)

// Tips handles GET /tips.
func (h *Handler) Tips(c *gin.Context) {
	tips, err := h.store.ListTips(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to get health tips", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

type chatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chatbot handles POST /chatbot with canned replies; no model is involved.
func (h *Handler) Chatbot(c *gin.Context) {
	var req chatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"reply": "No message received"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": chatbot.Reply(req.Message)})
}
