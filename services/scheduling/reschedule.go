package scheduling

import (
	"context"
	"sync"
	"time"

	"fisioagenda/models"
	"fisioagenda/utils"

	"go.uber.org/zap"
)

// DropPayload is what the calendar sends when a dragged appointment lands on
// a target day and time.
type DropPayload struct {
	AppointmentID string    `json:"appointmentId" binding:"required"`
	TargetDay     time.Time `json:"targetDay" binding:"required"`
	Hour          int       `json:"hour"`
	Minute        int       `json:"minute"`
}

// dragSession holds the single appointment currently in drag. Exactly one
// drag may be active at a time.
type dragSession struct {
	mu     sync.Mutex
	active *models.Appointment
}

// Relocate computes the new interval for a drop target, preserving the
// original duration exactly.
func Relocate(appt models.Appointment, targetDay time.Time, hour, minute int) (start, end time.Time) {
	start = utils.At(targetDay, hour, minute)
	end = start.Add(appt.End.Sub(appt.Start))
	return start, end
}

// BeginDrag loads the appointment and marks it as the active drag.
func (s *DefaultSchedulingService) BeginDrag(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.drag.mu.Lock()
	defer s.drag.mu.Unlock()
	if s.drag.active != nil {
		return nil, ErrDragInProgress
	}
	s.drag.active = appt
	return appt, nil
}

// Drop relocates the active drag to the payload's target and persists the
// move. A payload naming a different appointment than the one in drag is
// stale and drops as a no-op, returning the untouched appointment. No
// conflict check happens here: availability is advisory.
func (s *DefaultSchedulingService) Drop(ctx context.Context, payload DropPayload) (*models.Appointment, error) {
	s.drag.mu.Lock()
	active := s.drag.active
	if active == nil {
		s.drag.mu.Unlock()
		return nil, ErrNoActiveDrag
	}
	if active.ID != payload.AppointmentID {
		s.drag.mu.Unlock()
		utils.GetLogger().Warn("drop payload does not match active drag",
			zap.String("active", active.ID), zap.String("payload", payload.AppointmentID))
		return active, nil
	}
	s.drag.active = nil
	s.drag.mu.Unlock()

	oldStart := active.Start
	start, end := Relocate(*active, payload.TargetDay, payload.Hour, payload.Minute)
	fields := map[string]any{"start": start, "end": end}
	if err := s.Repo.UpdateFields(ctx, active.ID, fields); err != nil {
		return nil, err
	}
	active.Start = start
	active.End = end

	utils.GetLogger().Info("appointment relocated",
		zap.String("id", active.ID),
		zap.Time("from", oldStart), zap.Time("to", start))

	s.scheduleReminder(ctx, *active)
	s.invalidateOccupancyFor(ctx, []models.Appointment{
		{Start: oldStart}, *active,
	})
	return active, nil
}

// CancelDrag releases the active drag without persisting anything.
func (s *DefaultSchedulingService) CancelDrag() error {
	s.drag.mu.Lock()
	defer s.drag.mu.Unlock()
	if s.drag.active == nil {
		return ErrNoActiveDrag
	}
	s.drag.active = nil
	return nil
}
