package patientRepo

import (
	"context"

	"fisioagenda/database/repository/store"
	"fisioagenda/models"
)

// Table is the record-store table patients live in. Patients are owned by the
// records system; the scheduling core only reads them.
const Table = "patients"

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Patient, error)
}

type storePatientRepo struct {
	store store.RecordStore
}

// NewStorePatientRepo returns a read-only patient Repository backed by the
// record store.
func NewStorePatientRepo(rs store.RecordStore) Repository {
	return &storePatientRepo{store: rs}
}

func (r *storePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.store.FindByID(ctx, Table, id, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}
