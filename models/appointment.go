package models

import (
	"errors"
	"time"
)

// Appointment statuses. Cancelled is terminal but preserves history: a status
// change never deletes the row.
const (
	StatusBooked    = "booked"
	StatusConfirmed = "confirmed"
	StatusDone      = "done"
	StatusCancelled = "cancelled"

	// StatusNotPaid is a derived label, never persisted as Status. A done
	// appointment whose payment flag is still off reports as not_paid.
	StatusNotPaid = "not_paid"
)

// Appointment locations.
const (
	LocationStudio   = "studio"
	LocationDomicile = "domicile"
)

// Treatment types.
const (
	TreatmentSeduta      = "seduta"      // hands-on session
	TreatmentMacchinario = "macchinario" // machine-only treatment
)

// Price types.
const (
	PriceInvoiced = "invoiced"
	PriceCash     = "cash"
)

// Appointment is the central scheduling entity.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId" json:"patientId" binding:"required"`
	Start           time.Time `bson:"start" json:"start"`
	End             time.Time `bson:"end" json:"end"`
	Status          string    `bson:"status" json:"status"`
	Paid            bool      `bson:"paid" json:"paid"`
	Location        string    `bson:"location" json:"location"`
	ClinicSite      string    `bson:"clinicSite,omitempty" json:"clinicSite,omitempty"`
	DomicileAddress string    `bson:"domicileAddress,omitempty" json:"domicileAddress,omitempty"`
	TreatmentType   string    `bson:"treatmentType" json:"treatmentType"`
	PriceType       string    `bson:"priceType" json:"priceType"`
	Amount          *float64  `bson:"amount,omitempty" json:"amount,omitempty"`
	CalendarNote    string    `bson:"calendarNote,omitempty" json:"calendarNote,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Validation errors reported before any store call.
var (
	ErrInvalidInterval   = errors.New("appointment end must be after start")
	ErrMissingPatient    = errors.New("appointment requires a patient")
	ErrMissingClinicSite = errors.New("studio appointment requires a clinic site")
	ErrShortAddress      = errors.New("domicile appointment requires an address of at least 5 characters")
	ErrNegativeAmount    = errors.New("appointment amount cannot be negative")
	ErrUnknownStatus     = errors.New("unknown appointment status")
	ErrUnknownLocation   = errors.New("unknown appointment location")
	ErrUnknownTreatment  = errors.New("unknown treatment type")
	ErrUnknownPriceType  = errors.New("unknown price type")
)

// standardPrices maps treatment type × price type to the clinic's list price,
// applied whenever an appointment carries no explicit amount.
var standardPrices = map[string]map[string]float64{
	TreatmentSeduta:      {PriceInvoiced: 40, PriceCash: 35},
	TreatmentMacchinario: {PriceInvoiced: 25, PriceCash: 20},
}

// StandardPrice returns the clinic list price for a treatment/price-type pair.
// Unknown pairs price at zero.
func StandardPrice(treatmentType, priceType string) float64 {
	return standardPrices[treatmentType][priceType]
}

// EffectiveAmount is the amount this appointment contributes to totals:
// the explicit amount when set, the standard price otherwise. The reporting
// aggregator must use this same derivation or totals diverge.
func (a *Appointment) EffectiveAmount() float64 {
	if a.Amount != nil {
		return *a.Amount
	}
	return StandardPrice(a.TreatmentType, a.PriceType)
}

// Duration returns the appointment length.
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// IsUnpaid reports whether the appointment is done but not yet paid.
func (a *Appointment) IsUnpaid() bool {
	return a.Status == StatusDone && !a.Paid
}

// EffectiveStatus is the status shown to the user: the persisted status,
// except that a done-but-unpaid appointment reports as not_paid.
func (a *Appointment) EffectiveStatus() string {
	if a.IsUnpaid() {
		return StatusNotPaid
	}
	return a.Status
}

// Validate checks the entity invariants. It is called before every store
// write so that validation failures never touch the collaborator.
func (a *Appointment) Validate() error {
	if a.PatientID == "" {
		return ErrMissingPatient
	}
	if !a.End.After(a.Start) {
		return ErrInvalidInterval
	}
	switch a.Status {
	case StatusBooked, StatusConfirmed, StatusDone, StatusCancelled:
	default:
		return ErrUnknownStatus
	}
	switch a.Location {
	case LocationStudio:
		if a.ClinicSite == "" {
			return ErrMissingClinicSite
		}
	case LocationDomicile:
		if len(a.DomicileAddress) < 5 {
			return ErrShortAddress
		}
	default:
		return ErrUnknownLocation
	}
	if _, ok := standardPrices[a.TreatmentType]; !ok {
		return ErrUnknownTreatment
	}
	switch a.PriceType {
	case PriceInvoiced, PriceCash:
	default:
		return ErrUnknownPriceType
	}
	if a.Amount != nil && *a.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
