package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/models"
)

type appointmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Symptoms string `json:"symptoms" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// CreateAppointment handles POST /appointments.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	appointment := models.Appointment{
		Name:     req.Name,
		Symptoms: req.Symptoms,
		Date:     req.Date,
	}
	if err := h.store.CreateAppointment(c.Request.Context(), &appointment); err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to book appointment", err)
		return
	}

	h.log.WithField("appointment_id", appointment.ID.Hex()).Info("✅ Appointment booked")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment booked"})
}

// ListAppointments handles GET /appointments for the doctor dashboard.
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to get appointments", err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}
