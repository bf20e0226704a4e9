package scheduling

import (
	"testing"
	"time"

	"fisioagenda/models"
)

func TestBuildDaySlots_HalfOpenOverlap(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	// One appointment 10:00-11:00.
	appts := []models.Appointment{
		studioAppointment("a1", day.Add(10*time.Hour), 60),
	}

	slots := BuildDaySlots(day, appts, 7, 22, 30)
	if len(slots) != 30 {
		t.Fatalf("expected 30 slots between 07:00 and 22:00, got %d", len(slots))
	}

	bySlotStart := make(map[string]models.Slot)
	for _, slot := range slots {
		bySlotStart[slot.Start.Format("15:04")] = slot
	}

	occupied := []string{"10:00", "10:30"}
	for _, at := range occupied {
		if !bySlotStart[at].IsOccupied {
			t.Errorf("slot %s should be occupied", at)
		}
	}
	free := []string{"09:30", "11:00", "11:30"}
	for _, at := range free {
		if bySlotStart[at].IsOccupied {
			t.Errorf("slot %s should be free", at)
		}
	}
}

func TestBuildDaySlots_IgnoresCancelled(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	appt := studioAppointment("a1", day.Add(10*time.Hour), 60)
	appt.Status = models.StatusCancelled

	slots := BuildDaySlots(day, []models.Appointment{appt}, 7, 22, 30)
	for _, slot := range slots {
		if slot.IsOccupied {
			t.Fatalf("cancelled appointment occupies slot %s", slot.Start.Format("15:04"))
		}
	}
}

func TestBuildOccupancyForecast_Labels(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		minutes   int
		wantLabel string
	}{
		{"low", 300, models.OccupancyLow},       // 300/900 = 33%
		{"medium", 630, models.OccupancyMedium}, // 70%
		{"high", 810, models.OccupancyHigh},     // 90%
	}
	for _, tc := range cases {
		appts := []models.Appointment{
			studioAppointment("a1", day.Add(7*time.Hour), tc.minutes),
		}
		forecast := BuildOccupancyForecast(day, appts, 7, 22)
		if forecast.OccupiedMinutes != tc.minutes {
			t.Errorf("%s: expected %d occupied minutes, got %d", tc.name, tc.minutes, forecast.OccupiedMinutes)
		}
		if forecast.Label != tc.wantLabel {
			t.Errorf("%s: expected label %q, got %q", tc.name, tc.wantLabel, forecast.Label)
		}
	}
}

func TestBuildOccupancyForecast_ClipsToWindow(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	// 06:00-08:00: only the 07:00-08:00 hour falls inside the window.
	appts := []models.Appointment{
		studioAppointment("a1", day.Add(6*time.Hour), 120),
	}
	forecast := BuildOccupancyForecast(day, appts, 7, 22)
	if forecast.OccupiedMinutes != 60 {
		t.Fatalf("expected 60 clipped minutes, got %d", forecast.OccupiedMinutes)
	}
}
