package scheduling

import (
	"context"
	"time"

	"fisioagenda/models"
	"fisioagenda/utils"

	"go.uber.org/zap"
)

// CreateAppointment validates and inserts a single appointment.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if appt.Status == "" {
		appt.Status = models.StatusBooked
	}
	if err := appt.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Insert(ctx, appt); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("appointment created",
		zap.String("id", appt.ID), zap.Time("start", appt.Start))

	s.scheduleReminder(ctx, *appt)
	s.invalidateOccupancyFor(ctx, []models.Appointment{*appt})
	return appt, nil
}

// UpdateAppointment applies a partial field set after re-validating the
// merged entity. Status changes go through ChangeStatus, not here.
func (s *DefaultSchedulingService) UpdateAppointment(ctx context.Context, id string, fields map[string]any) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *appt
	if v, ok := fields["start"].(time.Time); ok {
		merged.Start = v
	}
	if v, ok := fields["end"].(time.Time); ok {
		merged.End = v
	}
	if v, ok := fields["location"].(string); ok {
		merged.Location = v
	}
	if v, ok := fields["clinicSite"].(string); ok {
		merged.ClinicSite = v
	}
	if v, ok := fields["domicileAddress"].(string); ok {
		merged.DomicileAddress = v
	}
	if v, ok := fields["treatmentType"].(string); ok {
		merged.TreatmentType = v
	}
	if v, ok := fields["priceType"].(string); ok {
		merged.PriceType = v
	}
	if v, ok := fields["amount"].(*float64); ok {
		merged.Amount = v
	}
	if v, ok := fields["calendarNote"].(string); ok {
		merged.CalendarNote = v
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	s.invalidateOccupancyFor(ctx, []models.Appointment{*appt, merged})
	return &merged, nil
}

// DeleteAppointment removes the row for good. Status changes never delete;
// this is the one explicit path. A dangling patient reference downgrades to a
// warning rather than blocking the delete.
func (s *DefaultSchedulingService) DeleteAppointment(ctx context.Context, id string) (string, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	warning := ""
	if s.Patients != nil {
		if _, err := s.Patients.GetByID(ctx, appt.PatientID); err != nil {
			warning = "appointment's patient no longer exists"
			utils.GetLogger().Warn("deleting appointment with dangling patient reference",
				zap.String("id", id), zap.String("patientId", appt.PatientID))
		}
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return "", err
	}
	s.invalidateOccupancyFor(ctx, []models.Appointment{*appt})
	return warning, nil
}

// GetWindow reloads every appointment in [from, to). Callers use it after
// each mutation: the design trades incremental patching for full-window
// re-fetch consistency.
func (s *DefaultSchedulingService) GetWindow(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return s.Repo.GetRange(ctx, from, to)
}
