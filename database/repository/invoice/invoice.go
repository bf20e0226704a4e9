package invoiceRepo

import (
	"context"
	"time"

	"fisioagenda/database/repository/store"
	"fisioagenda/models"
)

// Table is the record-store table invoices live in. The scheduling core only
// reads invoices for reporting aggregation.
const Table = "invoices"

type Repository interface {
	GetRange(ctx context.Context, from, to time.Time) ([]models.Invoice, error)
	GetUnpaidBefore(ctx context.Context, before time.Time) ([]models.Invoice, error)
}

type storeInvoiceRepo struct {
	store store.RecordStore
}

// NewStoreInvoiceRepo returns a read-only invoice Repository backed by the
// record store.
func NewStoreInvoiceRepo(rs store.RecordStore) Repository {
	return &storeInvoiceRepo{store: rs}
}

func (r *storeInvoiceRepo) GetRange(ctx context.Context, from, to time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	q := store.Query{
		Table: Table,
		Range: map[string]store.Range{"date": {Gte: from, Lt: to}},
		Sort:  "date",
	}
	if err := r.store.Find(ctx, q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *storeInvoiceRepo) GetUnpaidBefore(ctx context.Context, before time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	q := store.Query{
		Table: Table,
		Eq:    map[string]any{"paid": false},
		Range: map[string]store.Range{"date": {Lt: before}},
		Sort:  "date",
	}
	if err := r.store.Find(ctx, q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}
