package notification

import (
	"context"

	patientRepo "fisioagenda/database/repository/patient"
	"fisioagenda/models"
)

// Reminder is a rendered appointment reminder: the message text and the
// deep link the client opens to send it. Delivery is the client's job; the
// scheduler only substitutes the template and builds the link.
type Reminder struct {
	PatientID string `json:"patientId"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	DeepLink  string `json:"deepLink"`
}

// Service renders appointment reminders.
type Service interface {
	BuildReminder(ctx context.Context, appt models.Appointment) (*Reminder, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Patients patientRepo.Repository
}
