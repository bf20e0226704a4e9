package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRelocate_PreservesDuration(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	appt := studioAppointment("a1", start, 75)

	target := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	newStart, newEnd := Relocate(appt, target, 16, 30)

	if newStart != time.Date(2024, 3, 8, 16, 30, 0, 0, time.UTC) {
		t.Fatalf("unexpected new start: %s", newStart)
	}
	if newEnd.Sub(newStart) != appt.End.Sub(appt.Start) {
		t.Fatalf("duration changed: was %s, now %s", appt.End.Sub(appt.Start), newEnd.Sub(newStart))
	}
}

func TestDrop_RelocatesActiveDrag(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := newFakeApptRepo(studioAppointment("a1", start, 60))
	svc := newTestService(repo)

	if _, err := svc.BeginDrag(context.Background(), "a1"); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}

	got, err := svc.Drop(context.Background(), DropPayload{
		AppointmentID: "a1",
		TargetDay:     time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Hour:          15,
		Minute:        0,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if got.Start != time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start after drop: %s", got.Start)
	}
	if got.End.Sub(got.Start) != time.Hour {
		t.Fatalf("duration not preserved: %s", got.End.Sub(got.Start))
	}
	if len(repo.updateIDs) != 1 || repo.updateIDs[0] != "a1" {
		t.Fatalf("expected one persisted update for a1, got %v", repo.updateIDs)
	}
}

func TestDrop_StalePayloadIsNoOp(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := newFakeApptRepo(
		studioAppointment("a1", start, 60),
		studioAppointment("a2", start.Add(2*time.Hour), 60),
	)
	svc := newTestService(repo)

	if _, err := svc.BeginDrag(context.Background(), "a1"); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}

	got, err := svc.Drop(context.Background(), DropPayload{
		AppointmentID: "a2",
		TargetDay:     time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Hour:          15,
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if got.ID != "a1" || got.Start != start {
		t.Fatalf("stale drop must leave the active drag untouched, got %s at %s", got.ID, got.Start)
	}
	if len(repo.updateIDs) != 0 {
		t.Fatalf("stale drop must not persist anything, got %v", repo.updateIDs)
	}
}

func TestBeginDrag_SingleActiveDrag(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := newFakeApptRepo(
		studioAppointment("a1", start, 60),
		studioAppointment("a2", start.Add(2*time.Hour), 60),
	)
	svc := newTestService(repo)

	if _, err := svc.BeginDrag(context.Background(), "a1"); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if _, err := svc.BeginDrag(context.Background(), "a2"); !errors.Is(err, ErrDragInProgress) {
		t.Fatalf("expected ErrDragInProgress, got %v", err)
	}

	if err := svc.CancelDrag(); err != nil {
		t.Fatalf("CancelDrag: %v", err)
	}
	if len(repo.updateIDs) != 0 {
		t.Fatal("cancelling a drag must not persist anything")
	}
	if _, err := svc.BeginDrag(context.Background(), "a2"); err != nil {
		t.Fatalf("BeginDrag after cancel: %v", err)
	}
}

func TestCancelDrag_WithoutActiveDrag(t *testing.T) {
	svc := newTestService(newFakeApptRepo())
	if err := svc.CancelDrag(); !errors.Is(err, ErrNoActiveDrag) {
		t.Fatalf("expected ErrNoActiveDrag, got %v", err)
	}
}
