package scheduling

import (
	"context"

	"fisioagenda/models"
	"fisioagenda/utils"

	"go.uber.org/zap"
)

// CanTransition reports whether a status edit is legal. Cancelled is
// terminal; the active statuses (booked, confirmed, done) move freely among
// themselves and any of them may cancel.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	if from == models.StatusCancelled {
		return false
	}
	if to == models.StatusCancelled {
		return true
	}
	switch to {
	case models.StatusBooked, models.StatusConfirmed, models.StatusDone:
		return true
	}
	return false
}

// ApplyStatus performs a status transition on the entity. Any transition to a
// status other than done forces the payment flag off: a session that stops
// being done cannot remain marked paid. Moving to done never sets the flag;
// payment stays an explicit toggle.
func ApplyStatus(appt *models.Appointment, newStatus string) error {
	switch newStatus {
	case models.StatusBooked, models.StatusConfirmed, models.StatusDone, models.StatusCancelled:
	default:
		return models.ErrUnknownStatus
	}
	if !CanTransition(appt.Status, newStatus) {
		return ErrIllegalTransition
	}
	appt.Status = newStatus
	if newStatus != models.StatusDone {
		appt.Paid = false
	}
	return nil
}

// ChangeStatus transitions an appointment and persists the result. The caller
// re-fetches the affected window afterwards to refresh derived views.
func (s *DefaultSchedulingService) ChangeStatus(ctx context.Context, id, newStatus string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ApplyStatus(appt, newStatus); err != nil {
		return nil, err
	}
	fields := map[string]any{"status": appt.Status, "paid": appt.Paid}
	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("appointment status changed",
		zap.String("id", id), zap.String("status", appt.Status))
	s.invalidateOccupancyFor(ctx, []models.Appointment{*appt})
	return appt, nil
}

// ToggleDone flips an appointment between done and confirmed. A quick
// shortcut for the calendar view, distinct from the full status editor.
func (s *DefaultSchedulingService) ToggleDone(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	target := models.StatusDone
	if appt.Status == models.StatusDone {
		target = models.StatusConfirmed
	}
	return s.ChangeStatus(ctx, id, target)
}

// SetPaid toggles the payment flag. Only a done appointment can carry it.
func (s *DefaultSchedulingService) SetPaid(ctx context.Context, id string, paid bool) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusDone {
		return nil, ErrPaymentNotDone
	}
	appt.Paid = paid
	if err := s.Repo.UpdateFields(ctx, id, map[string]any{"paid": paid}); err != nil {
		return nil, err
	}
	return appt, nil
}
