package handlers

import (
	"net/http"

	appointmentRepo "fisioagenda/database/repository/appointment"
	"fisioagenda/services/notification"

	"github.com/gin-gonic/gin"
)

// ReminderHandler renders appointment reminders on demand.
type ReminderHandler struct {
	Service      notification.Service
	Appointments appointmentRepo.Repository
}

func NewReminderHandler(svc notification.Service, appts appointmentRepo.Repository) *ReminderHandler {
	return &ReminderHandler{Service: svc, Appointments: appts}
}

// GetReminderLink renders the reminder message for one appointment and
// returns the deep link the client opens to send it. A missing patient is a
// warning, not a crash.
func (h *ReminderHandler) GetReminderLink(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found", "message": err.Error()})
		return
	}

	reminder, err := h.Service.BuildReminder(c.Request.Context(), *appt)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"warning": "Cannot build reminder", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminder)
}
