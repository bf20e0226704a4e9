package models

import "time"

// Patient is the read model for the externally owned patient record. The
// scheduling core only needs enough of it to render messages and warn on
// dangling references.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
