package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/models"
)

type recoveryRequest struct {
	User     string `json:"user" binding:"required"`
	Exercise bool   `json:"exercise"`
	Medicine bool   `json:"medicine"`
}

// LogRecovery handles POST /recovery.
func (h *Handler) LogRecovery(c *gin.Context) {
	var req recoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is required"})
		return
	}

	entry := models.RecoveryEntry{
		Exercise:  req.Exercise,
		Medicine:  req.Medicine,
		Timestamp: time.Now().UTC(),
	}
	if err := h.store.AppendRecoveryEntry(c.Request.Context(), req.User, entry); err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to save recovery log", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log saved"})
}

// RecoveryLogs handles GET /recovery/:user.
func (h *Handler) RecoveryLogs(c *gin.Context) {
	entries, err := h.store.ListRecoveryEntries(c.Request.Context(), c.Param("user"))
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to get recovery logs", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
