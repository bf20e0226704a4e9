package scheduling

import (
	"context"
	"fmt"
	"time"

	"fisioagenda/models"
)

// fakeApptRepo is an in-memory Repository recording every write.
type fakeApptRepo struct {
	byID        map[string]*models.Appointment
	insertCalls int
	updateIDs   []string
	updates     []map[string]any
}

func newFakeApptRepo(appts ...models.Appointment) *fakeApptRepo {
	r := &fakeApptRepo{byID: make(map[string]*models.Appointment)}
	for i := range appts {
		a := appts[i]
		r.byID[a.ID] = &a
	}
	return r
}

func (r *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	appt, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("appointments record %s not found", id)
	}
	clone := *appt
	return &clone, nil
}

func (r *fakeApptRepo) GetRange(_ context.Context, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.byID {
		if !appt.Start.Before(from) && appt.Start.Before(to) {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) GetByPatientID(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.PatientID == patientID {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) GetUnpaidBefore(_ context.Context, before time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.IsUnpaid() && appt.Start.Before(before) {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) Insert(_ context.Context, appt *models.Appointment) error {
	r.insertCalls++
	if appt.ID == "" {
		appt.ID = fmt.Sprintf("appt-%d", len(r.byID)+1)
	}
	clone := *appt
	r.byID[appt.ID] = &clone
	return nil
}

func (r *fakeApptRepo) InsertMany(_ context.Context, appts []models.Appointment) ([]string, error) {
	r.insertCalls++
	ids := make([]string, len(appts))
	for i := range appts {
		if appts[i].ID == "" {
			appts[i].ID = fmt.Sprintf("appt-%d", len(r.byID)+1)
		}
		clone := appts[i]
		r.byID[clone.ID] = &clone
		ids[i] = clone.ID
	}
	return ids, nil
}

func (r *fakeApptRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	appt, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("appointments record %s not found", id)
	}
	r.updateIDs = append(r.updateIDs, id)
	r.updates = append(r.updates, fields)
	if v, ok := fields["status"].(string); ok {
		appt.Status = v
	}
	if v, ok := fields["paid"].(bool); ok {
		appt.Paid = v
	}
	if v, ok := fields["start"].(time.Time); ok {
		appt.Start = v
	}
	if v, ok := fields["end"].(time.Time); ok {
		appt.End = v
	}
	return nil
}

func (r *fakeApptRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("appointments record %s not found", id)
	}
	delete(r.byID, id)
	return nil
}

func newTestService(repo *fakeApptRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{Repo: repo}
}

func studioAppointment(id string, start time.Time, minutes int) models.Appointment {
	return models.Appointment{
		ID:            id,
		PatientID:     "patient-1",
		Start:         start,
		End:           start.Add(time.Duration(minutes) * time.Minute),
		Status:        models.StatusBooked,
		Location:      models.LocationStudio,
		ClinicSite:    "Studio Centro",
		TreatmentType: models.TreatmentSeduta,
		PriceType:     models.PriceCash,
	}
}
