package handlers

import (
	"net/http"
	"time"

	"fisioagenda/cron"
	"fisioagenda/services/scheduling"
	"fisioagenda/utils"

	"github.com/gin-gonic/gin"
)

// DaySlots returns the 30-minute slot grid for one day.
func (h *AppointmentHandler) DaySlots(c *gin.Context) {
	day, err := utils.ParseISODate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date"})
		return
	}

	slots, err := h.Service.DaySlots(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute slots", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": slots})
}

// DayOccupancy returns the advisory occupancy forecast for one day.
func (h *AppointmentHandler) DayOccupancy(c *gin.Context) {
	day, err := utils.ParseISODate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date"})
		return
	}

	forecast, err := h.Service.DayOccupancy(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute occupancy", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// BeginDrag marks an appointment as the active drag.
func (h *AppointmentHandler) BeginDrag(c *gin.Context) {
	appt, err := h.Service.BeginDrag(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to begin drag", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dragging": appt})
}

// Drop lands the active drag on a target day and time.
func (h *AppointmentHandler) Drop(c *gin.Context) {
	var payload scheduling.DropPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drop payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Drop(c.Request.Context(), payload)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to drop appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelDrag releases the active drag without persisting anything.
func (h *AppointmentHandler) CancelDrag(c *gin.Context) {
	if err := h.Service.CancelDrag(); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to cancel drag", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// Tick reports the latest minute tick so clients can redraw the current-time
// indicator line.
func (h *AppointmentHandler) Tick(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"now":      time.Now(),
		"lastTick": cron.LastTick(),
	})
}
