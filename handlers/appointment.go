package handlers

import (
	"errors"
	"net/http"
	"time"

	"fisioagenda/models"
	"fisioagenda/services/scheduling"
	"fisioagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the scheduling engine over HTTP.
type AppointmentHandler struct {
	Service scheduling.Service
}

func NewAppointmentHandler(svc scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// validationErrs are rejected before any store call and map to 400.
var validationErrs = []error{
	models.ErrInvalidInterval,
	models.ErrMissingPatient,
	models.ErrMissingClinicSite,
	models.ErrShortAddress,
	models.ErrNegativeAmount,
	models.ErrUnknownStatus,
	models.ErrUnknownLocation,
	models.ErrUnknownTreatment,
	models.ErrUnknownPriceType,
	scheduling.ErrEmptyWeekdays,
	scheduling.ErrInvalidWeekday,
	scheduling.ErrUntilBeforeStart,
	scheduling.ErrRecurrenceCap,
	scheduling.ErrIllegalTransition,
	scheduling.ErrPaymentNotDone,
	scheduling.ErrDragInProgress,
	scheduling.ErrNoActiveDrag,
}

func statusFor(err error) int {
	for _, verr := range validationErrs {
		if errors.Is(err, verr) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// CreateAppointment inserts a single appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	logger := utils.GetLogger()

	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateAppointment(c.Request.Context(), &appt)
	if err != nil {
		logger.Error("Failed to create appointment", zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Failed to create appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": created})
}

// CreateSeries expands a recurrence request into a batch of appointments.
func (h *AppointmentHandler) CreateSeries(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Template   models.Appointment       `json:"template" binding:"required"`
		Recurrence models.RecurrenceRequest `json:"recurrence" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appts, err := h.Service.CreateSeries(c.Request.Context(), req.Template, req.Recurrence)
	if err != nil {
		logger.Error("Failed to create appointment series", zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Failed to create appointment series", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointments": appts, "count": len(appts)})
}

// UpdateAppointment applies a partial field set to one appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	var body struct {
		Start           *time.Time `json:"start"`
		End             *time.Time `json:"end"`
		Location        *string    `json:"location"`
		ClinicSite      *string    `json:"clinicSite"`
		DomicileAddress *string    `json:"domicileAddress"`
		TreatmentType   *string    `json:"treatmentType"`
		PriceType       *string    `json:"priceType"`
		Amount          *float64   `json:"amount"`
		CalendarNote    *string    `json:"calendarNote"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	fields := map[string]any{}
	if body.Start != nil {
		fields["start"] = *body.Start
	}
	if body.End != nil {
		fields["end"] = *body.End
	}
	if body.Location != nil {
		fields["location"] = *body.Location
	}
	if body.ClinicSite != nil {
		fields["clinicSite"] = *body.ClinicSite
	}
	if body.DomicileAddress != nil {
		fields["domicileAddress"] = *body.DomicileAddress
	}
	if body.TreatmentType != nil {
		fields["treatmentType"] = *body.TreatmentType
	}
	if body.PriceType != nil {
		fields["priceType"] = *body.PriceType
	}
	if body.Amount != nil {
		fields["amount"] = body.Amount
	}
	if body.CalendarNote != nil {
		fields["calendarNote"] = *body.CalendarNote
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	appt, err := h.Service.UpdateAppointment(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to update appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// DeleteAppointment removes one appointment for good.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	warning, err := h.Service.DeleteAppointment(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to delete appointment", "message": err.Error()})
		return
	}
	resp := gin.H{"deleted": id}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

// GetWindow reloads every appointment in a [from, to) window.
func (h *AppointmentHandler) GetWindow(c *gin.Context) {
	from, err := utils.ParseISODate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid from date"})
		return
	}
	to, err := utils.ParseISODate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid to date"})
		return
	}

	appts, err := h.Service.GetWindow(c.Request.Context(), from, utils.AddDays(to, 1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ChangeStatus runs a full status transition.
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid status in request body"})
		return
	}

	appt, err := h.Service.ChangeStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to change status", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt, "effectiveStatus": appt.EffectiveStatus()})
}

// ToggleDone flips an appointment between done and confirmed.
func (h *AppointmentHandler) ToggleDone(c *gin.Context) {
	appt, err := h.Service.ToggleDone(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to toggle status", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt, "effectiveStatus": appt.EffectiveStatus()})
}

// SetPaid toggles the payment flag of a done appointment.
func (h *AppointmentHandler) SetPaid(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Paid *bool `json:"paid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid paid flag in request body"})
		return
	}

	appt, err := h.Service.SetPaid(c.Request.Context(), id, *body.Paid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to set payment flag", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt, "effectiveStatus": appt.EffectiveStatus()})
}
