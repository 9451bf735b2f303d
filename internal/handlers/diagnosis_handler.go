package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/diagnosis"
)

type symptomCheckRequest struct {
	Symptom string `json:"symptom" binding:"required"`
}

type diagnoseRequest struct {
	Symptom  string `json:"symptom" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type processSymptomsRequest struct {
	Symptoms string `json:"symptoms" binding:"required"`
	Language string `json:"language"`
}

// SymptomCheck handles POST /api/symptom-check. Model failures surface as 500.
func (h *Handler) SymptomCheck(c *gin.Context) {
	var req symptomCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symptom provided"})
		return
	}

	result, err := h.diagnoser.QuickCheck(requestContext(c), req.Symptom)
	if errors.Is(err, diagnosis.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symptom provided"})
		return
	}
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to get health guidance.", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Diagnose handles POST /api/diagnose. It always answers with a complete
// result; the pipeline substitutes canned advice when the model fails.
func (h *Handler) Diagnose(c *gin.Context) {
	var req diagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing symptom or language"})
		return
	}

	h.log.WithField("language", req.Language).Debug("diagnosis requested")

	result, err := h.diagnoser.Diagnose(requestContext(c), req.Symptom, req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing symptom or language"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProcessSymptoms handles POST /api/process_symptoms for the voice assistant,
// adding the spoken summary of the result.
func (h *Handler) ProcessSymptoms(c *gin.Context) {
	var req processSymptomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symptoms provided"})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	result, err := h.diagnoser.Diagnose(requestContext(c), req.Symptoms, req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symptoms provided"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"diagnosis":       result.PatientMessage,
		"relief_tips":     result.ReliefTips,
		"emergency_signs": result.EmergencySigns,
		"important_note":  result.ImportantNote,
		"read_aloud":      diagnosis.ReadAloud(result, req.Language),
	})
}

// Languages handles GET /api/languages.
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": diagnosis.SupportedLanguages})
}
