package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/genai"
	"rural-health-assistant/internal/mentor"
)

type askRequest struct {
	Query string `json:"query" binding:"required"`
}

type suggestRequest struct {
	Profile string `json:"profile"`
}

// Ask handles POST /ask.
func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No query provided"})
		return
	}

	text, err := h.generator.Generate(c.Request.Context(), mentor.AskPrompt(req.Query))
	switch {
	case errors.Is(err, genai.ErrEmptyResponse):
		text = mentor.NoAnswer
	case err != nil:
		h.fail(c, http.StatusInternalServerError, "Failed to get answer from GenAI.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": text})
}

// Suggest handles POST /suggest. The body is optional.
func (h *Handler) Suggest(c *gin.Context) {
	var req suggestRequest
	_ = c.ShouldBindJSON(&req)

	text, err := h.generator.Generate(c.Request.Context(), mentor.SuggestPrompt(req.Profile))
	switch {
	case errors.Is(err, genai.ErrEmptyResponse):
		text = mentor.NoSuggestion
	case err != nil:
		h.fail(c, http.StatusInternalServerError, "Failed to get suggestion from GenAI.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": text})
}
