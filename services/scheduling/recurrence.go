package scheduling

import (
	"context"
	"fmt"
	"time"

	"fisioagenda/config"
	"fisioagenda/models"
	"fisioagenda/utils"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

// DefaultRecurrenceCap bounds a single recurrence expansion. A request past
// the cap is rejected whole: no partial insert.
const DefaultRecurrenceCap = 200

var rruleWeekdays = map[int]rrule.Weekday{
	1: rrule.MO,
	2: rrule.TU,
	3: rrule.WE,
	4: rrule.TH,
	5: rrule.FR,
	6: rrule.SA,
}

// ExpandRecurrence expands a recurrence request into concrete occurrence
// start times, each carrying FirstStart's time of day. Sunday is not a legal
// weekday: the clinic runs a Monday-Saturday week.
func ExpandRecurrence(req models.RecurrenceRequest, limit int) ([]time.Time, error) {
	if len(req.Weekdays) == 0 {
		return nil, ErrEmptyWeekdays
	}
	byDay := make([]rrule.Weekday, 0, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		day, ok := rruleWeekdays[wd]
		if !ok {
			return nil, ErrInvalidWeekday
		}
		byDay = append(byDay, day)
	}

	until := utils.At(req.UntilDate, 23, 59)
	if until.Before(req.FirstStart) {
		return nil, ErrUntilBeforeStart
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   req.FirstStart,
		Until:     until,
		Byweekday: byDay,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}

	occurrences := r.All()
	if limit <= 0 {
		limit = DefaultRecurrenceCap
	}
	if len(occurrences) > limit {
		return nil, fmt.Errorf("%w: %d occurrences, cap %d", ErrRecurrenceCap, len(occurrences), limit)
	}
	return occurrences, nil
}

// CreateSeries expands the request and inserts one appointment per occurrence
// in a single batch. The template supplies every field except start/end; each
// occurrence keeps the template's duration. Either the whole batch lands or
// the operation fails with no retry.
func (s *DefaultSchedulingService) CreateSeries(ctx context.Context, template models.Appointment, req models.RecurrenceRequest) ([]models.Appointment, error) {
	logger := utils.GetLogger()

	duration := template.End.Sub(template.Start)
	if duration <= 0 {
		return nil, models.ErrInvalidInterval
	}
	if template.Status == "" {
		template.Status = models.StatusBooked
	}
	if err := (&template).Validate(); err != nil {
		return nil, err
	}

	starts, err := ExpandRecurrence(req, config.AppConfig.RecurrenceCap)
	if err != nil {
		return nil, err
	}

	appts := make([]models.Appointment, len(starts))
	for i, start := range starts {
		occ := template
		occ.ID = ""
		occ.Start = start
		occ.End = start.Add(duration)
		appts[i] = occ
	}

	if _, err := s.Repo.InsertMany(ctx, appts); err != nil {
		return nil, err
	}
	logger.Info("created appointment series",
		zap.String("patientId", template.PatientID),
		zap.Int("occurrences", len(appts)))

	for i := range appts {
		s.scheduleReminder(ctx, appts[i])
	}
	s.invalidateOccupancyFor(ctx, appts)

	return appts, nil
}

// scheduleReminder enqueues a reminder for the appointment. Failures are
// logged only: reminders never fail a booking.
func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, appt models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, appt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
