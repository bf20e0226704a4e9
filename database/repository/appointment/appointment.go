package appointmentRepo

import (
	"context"
	"time"

	"fisioagenda/database/repository/store"
	"fisioagenda/models"
)

// Table is the record-store table appointments live in.
const Table = "appointments"

// Repository is the appointment view over the record store.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetUnpaidBefore(ctx context.Context, before time.Time) ([]models.Appointment, error)
	Insert(ctx context.Context, appt *models.Appointment) error
	InsertMany(ctx context.Context, appts []models.Appointment) ([]string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type storeAppointmentRepo struct {
	store store.RecordStore
}

// NewStoreAppointmentRepo returns a Repository backed by the record store.
func NewStoreAppointmentRepo(rs store.RecordStore) Repository {
	return &storeAppointmentRepo{store: rs}
}
