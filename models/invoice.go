package models

import "time"

// Invoice is the read model the reporting aggregator consumes. Bookkeeping
// beyond this shape lives outside the scheduling core.
type Invoice struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Date      time.Time `bson:"date" json:"date"`
	Paid      bool      `bson:"paid" json:"paid"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
