package models

import "time"

// Report period kinds.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// ReportStatistics holds the derived figures over a period.
type ReportStatistics struct {
	PaidTotal   float64 `json:"paidTotal"`
	PaidCount   int     `json:"paidCount"`
	PaidAverage float64 `json:"paidAverage"`
	PaidMax     float64 `json:"paidMax"`
	PaidMin     float64 `json:"paidMin"`
	UnpaidTotal float64 `json:"unpaidTotal"`
	UnpaidCount int     `json:"unpaidCount"`
}

// Report is the aggregator's public shape. PaidSeries and UnpaidSeries share
// the index space of Labels.
type Report struct {
	Period       string           `json:"period"`
	From         time.Time        `json:"from"`
	To           time.Time        `json:"to"`
	Labels       []string         `json:"labels"`
	PaidSeries   []float64        `json:"paidSeries"`
	UnpaidSeries []float64        `json:"unpaidSeries"`
	Statistics   ReportStatistics `json:"statistics"`
}

// ReportRecord is one financial record feeding the aggregator: a priced
// appointment or an invoice, reduced to what bucketing needs.
type ReportRecord struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // "appointment" or "invoice"
	PatientID string    `json:"patientId"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Paid      bool      `json:"paid"`
}

// ArrearsEntry sums unpaid amounts dated before the viewed period, grouped by
// calendar month ("2006-01").
type ArrearsEntry struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}
