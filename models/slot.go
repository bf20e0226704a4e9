package models

import "time"

// Slot is one fixed subdivision of the operating window, derived for
// availability rendering. Never persisted.
type Slot struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	IsOccupied bool      `json:"isOccupied"`
}

// Occupancy pressure labels. Advisory UI text only: the system never blocks
// over-booking, it only visualizes pressure.
const (
	OccupancyHigh   = "ALTA OCCUPAZIONE"
	OccupancyMedium = "MEDIA OCCUPAZIONE"
	OccupancyLow    = "BASSA OCCUPAZIONE"
)

// OccupancyForecast summarizes how full a day is.
type OccupancyForecast struct {
	Date            string  `json:"date"`
	OccupiedMinutes int     `json:"occupiedMinutes"`
	OccupancyRate   float64 `json:"occupancyRate"`
	Label           string  `json:"label"`
}

// RecurrenceRequest expands a single appointment template into a bounded
// series of future occurrences. Weekdays use Monday=1..Saturday=6; Sunday is
// excluded by design. Transient, never persisted.
type RecurrenceRequest struct {
	FirstStart time.Time `json:"firstStart"`
	UntilDate  time.Time `json:"untilDate"`
	Weekdays   []int     `json:"weekdays"`
}
