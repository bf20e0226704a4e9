package reporting

import (
	"context"
	"time"

	appointmentRepo "fisioagenda/database/repository/appointment"
	invoiceRepo "fisioagenda/database/repository/invoice"
	"fisioagenda/models"
)

// Service builds billing reports from appointments and invoices.
type Service interface {
	BuildReport(ctx context.Context, period string, anchor time.Time) (*models.Report, error)
	Arrears(ctx context.Context, period string, anchor time.Time) ([]models.ArrearsEntry, error)
	BucketDetail(ctx context.Context, period string, anchor time.Time, bucket int) ([]models.ReportRecord, error)
}

// DefaultReportingService is the production implementation.
type DefaultReportingService struct {
	Appointments appointmentRepo.Repository
	Invoices     invoiceRepo.Repository
}

// collectRecords reduces appointments and invoices in [from, to) to report
// records. Only done appointments carry financial weight; their amount falls
// back to the standard price exactly as the appointment editor derives it.
func (s *DefaultReportingService) collectRecords(ctx context.Context, from, to time.Time) ([]models.ReportRecord, error) {
	appts, err := s.Appointments.GetRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	var records []models.ReportRecord
	for i := range appts {
		if appts[i].Status != models.StatusDone {
			continue
		}
		records = append(records, appointmentRecord(appts[i]))
	}

	if s.Invoices != nil {
		invoices, err := s.Invoices.GetRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		for i := range invoices {
			records = append(records, invoiceRecord(invoices[i]))
		}
	}
	return records, nil
}

func appointmentRecord(appt models.Appointment) models.ReportRecord {
	return models.ReportRecord{
		ID:        appt.ID,
		Source:    "appointment",
		PatientID: appt.PatientID,
		Amount:    appt.EffectiveAmount(),
		Date:      appt.Start,
		Paid:      appt.Paid,
	}
}

func invoiceRecord(inv models.Invoice) models.ReportRecord {
	return models.ReportRecord{
		ID:        inv.ID,
		Source:    "invoice",
		PatientID: inv.PatientID,
		Amount:    inv.Amount,
		Date:      inv.Date,
		Paid:      inv.Paid,
	}
}

// BuildReport aggregates the period's records into the report shape.
func (s *DefaultReportingService) BuildReport(ctx context.Context, period string, anchor time.Time) (*models.Report, error) {
	from, to, _, err := ResolvePeriod(period, anchor)
	if err != nil {
		return nil, err
	}
	records, err := s.collectRecords(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return Aggregate(period, anchor, records)
}

// Arrears sums the unpaid backlog dated before the period's start, grouped by
// calendar month.
func (s *DefaultReportingService) Arrears(ctx context.Context, period string, anchor time.Time) ([]models.ArrearsEntry, error) {
	from, _, _, err := ResolvePeriod(period, anchor)
	if err != nil {
		return nil, err
	}

	appts, err := s.Appointments.GetUnpaidBefore(ctx, from)
	if err != nil {
		return nil, err
	}
	var records []models.ReportRecord
	for i := range appts {
		records = append(records, appointmentRecord(appts[i]))
	}

	if s.Invoices != nil {
		invoices, err := s.Invoices.GetUnpaidBefore(ctx, from)
		if err != nil {
			return nil, err
		}
		for i := range invoices {
			records = append(records, invoiceRecord(invoices[i]))
		}
	}
	return GroupArrears(from, records), nil
}

// BucketDetail lists the individual records behind one bucket of the report.
func (s *DefaultReportingService) BucketDetail(ctx context.Context, period string, anchor time.Time, bucket int) ([]models.ReportRecord, error) {
	from, to, _, err := ResolvePeriod(period, anchor)
	if err != nil {
		return nil, err
	}
	records, err := s.collectRecords(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BucketRecords(period, anchor, bucket, records)
}
