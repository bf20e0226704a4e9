package scheduling

import (
	"context"
	"errors"
	"time"

	appointmentRepo "fisioagenda/database/repository/appointment"
	patientRepo "fisioagenda/database/repository/patient"
	"fisioagenda/models"

	"github.com/go-redis/redis/v8"
)

// Scheduling errors detected before any store call.
var (
	ErrEmptyWeekdays     = errors.New("recurrence requires at least one weekday")
	ErrInvalidWeekday    = errors.New("recurrence weekdays must be Monday(1) through Saturday(6)")
	ErrUntilBeforeStart  = errors.New("recurrence until-date precedes the first occurrence")
	ErrRecurrenceCap     = errors.New("recurrence expands past the occurrence cap")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrPaymentNotDone    = errors.New("payment flag can only be set on a done appointment")
	ErrDragInProgress    = errors.New("another appointment is already being dragged")
	ErrNoActiveDrag      = errors.New("no drag in progress")
)

// ReminderQueue schedules appointment reminders. Enqueue failures are logged
// and never fail the booking that triggered them.
type ReminderQueue interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}

// Service is the appointment scheduling engine: recurrence expansion, slot
// availability, status transitions and drag relocation. Every mutation
// persists through the record store; callers re-fetch the affected window to
// refresh derived views.
type Service interface {
	CreateAppointment(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)
	CreateSeries(ctx context.Context, template models.Appointment, req models.RecurrenceRequest) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, fields map[string]any) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) (warning string, err error)
	GetWindow(ctx context.Context, from, to time.Time) ([]models.Appointment, error)

	ChangeStatus(ctx context.Context, id, newStatus string) (*models.Appointment, error)
	ToggleDone(ctx context.Context, id string) (*models.Appointment, error)
	SetPaid(ctx context.Context, id string, paid bool) (*models.Appointment, error)

	DaySlots(ctx context.Context, day time.Time) ([]models.Slot, error)
	DayOccupancy(ctx context.Context, day time.Time) (*models.OccupancyForecast, error)
	RefreshOccupancy(ctx context.Context, day time.Time) (*models.OccupancyForecast, error)

	BeginDrag(ctx context.Context, id string) (*models.Appointment, error)
	Drop(ctx context.Context, payload DropPayload) (*models.Appointment, error)
	CancelDrag() error
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Repo      appointmentRepo.Repository
	Patients  patientRepo.Repository
	Cache     *redis.Client
	Reminders ReminderQueue

	drag dragSession
}
