package appointmentRepo

import (
	"context"
	"time"

	"fisioagenda/database/repository/store"
	"fisioagenda/models"

	"github.com/google/uuid"
)

func (r *storeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.store.FindByID(ctx, Table, id, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// GetRange fetches every appointment starting in [from, to), ordered by start.
func (r *storeAppointmentRepo) GetRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := store.Query{
		Table: Table,
		Range: map[string]store.Range{"start": {Gte: from, Lt: to}},
		Sort:  "start",
	}
	if err := r.store.Find(ctx, q, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *storeAppointmentRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := store.Query{
		Table: Table,
		Eq:    map[string]any{"patientId": patientID},
		Sort:  "start",
	}
	if err := r.store.Find(ctx, q, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// GetUnpaidBefore fetches done-but-unpaid appointments dated strictly before
// the given boundary. Feeds the arrears view.
func (r *storeAppointmentRepo) GetUnpaidBefore(ctx context.Context, before time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := store.Query{
		Table: Table,
		Eq:    map[string]any{"status": models.StatusDone, "paid": false},
		Range: map[string]store.Range{"start": {Lt: before}},
		Sort:  "start",
	}
	if err := r.store.Find(ctx, q, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *storeAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = time.Now()
	return r.store.InsertOne(ctx, Table, appt)
}

// InsertMany inserts a recurrence batch in one call. There is no per-row
// rollback: a failure leaves the whole batch to be treated as failed.
func (r *storeAppointmentRepo) InsertMany(ctx context.Context, appts []models.Appointment) ([]string, error) {
	now := time.Now()
	docs := make([]any, len(appts))
	ids := make([]string, len(appts))
	for i := range appts {
		if appts[i].ID == "" {
			appts[i].ID = uuid.New().String()
		}
		appts[i].CreatedAt = now
		appts[i].UpdatedAt = now
		docs[i] = appts[i]
		ids[i] = appts[i].ID
	}
	if err := r.store.InsertMany(ctx, Table, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *storeAppointmentRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updatedAt"] = time.Now()
	return r.store.UpdateByID(ctx, Table, id, fields)
}

func (r *storeAppointmentRepo) DeleteByID(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, Table, id)
}
