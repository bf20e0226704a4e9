package notification

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"fisioagenda/models"
	"fisioagenda/utils"
)

// reminderTemplate is the message sent ahead of an appointment. Placeholders:
// {name}, {day}, {time}, {location}.
const reminderTemplate = "Ciao {name}! Ti ricordiamo l'appuntamento di {day} alle {time} {location}. A presto!"

// BuildReminder renders the reminder message for an appointment and wraps it
// in a wa.me deep link for the patient's phone number.
func (s *DefaultNotificationService) BuildReminder(ctx context.Context, appt models.Appointment) (*Reminder, error) {
	patient, err := s.Patients.GetByID(ctx, appt.PatientID)
	if err != nil {
		return nil, fmt.Errorf("reminder: patient lookup failed: %w", err)
	}
	if patient.Phone == "" {
		return nil, fmt.Errorf("reminder: patient %s has no phone number", patient.ID)
	}

	message := RenderReminder(reminderTemplate, patient.FirstName, appt, time.Now())
	return &Reminder{
		PatientID: patient.ID,
		Phone:     patient.Phone,
		Message:   message,
		DeepLink:  DeepLink(patient.Phone, message),
	}, nil
}

// RenderReminder substitutes the template placeholders for one appointment.
func RenderReminder(template, firstName string, appt models.Appointment, now time.Time) string {
	location := "a domicilio"
	if appt.Location == models.LocationStudio {
		location = "presso " + appt.ClinicSite
	}
	r := strings.NewReplacer(
		"{name}", firstName,
		"{day}", utils.RelativeDayLabel(appt.Start, now),
		"{time}", appt.Start.Format("15:04"),
		"{location}", location,
	)
	return r.Replace(template)
}

// DeepLink builds the wa.me URL that opens a chat with the message prefilled.
func DeepLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
