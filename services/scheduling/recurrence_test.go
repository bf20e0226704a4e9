package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"fisioagenda/models"
)

func TestExpandRecurrence_Basic(t *testing.T) {
	loc := time.UTC
	// Monday 2024-01-01 09:00, Mon/Wed/Fri through Sunday 2024-01-14.
	req := models.RecurrenceRequest{
		FirstStart: time.Date(2024, 1, 1, 9, 0, 0, 0, loc),
		UntilDate:  time.Date(2024, 1, 14, 0, 0, 0, 0, loc),
		Weekdays:   []int{1, 3, 5},
	}

	starts, err := ExpandRecurrence(req, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDays := []int{1, 3, 5, 8, 10, 12}
	if len(starts) != len(wantDays) {
		t.Fatalf("expected %d occurrences, got %d", len(wantDays), len(starts))
	}
	for i, start := range starts {
		if start.Day() != wantDays[i] {
			t.Errorf("occurrence %d: expected day %d, got %d", i, wantDays[i], start.Day())
		}
		if start.Hour() != 9 || start.Minute() != 0 {
			t.Errorf("occurrence %d: expected 09:00, got %s", i, start.Format("15:04"))
		}
		if start.Weekday() == time.Sunday {
			t.Errorf("occurrence %d falls on Sunday", i)
		}
	}
}

func TestExpandRecurrence_SkipsBeforeFirstStart(t *testing.T) {
	loc := time.UTC
	// Wednesday 2024-01-03: the Monday of the same week must not appear.
	req := models.RecurrenceRequest{
		FirstStart: time.Date(2024, 1, 3, 10, 30, 0, 0, loc),
		UntilDate:  time.Date(2024, 1, 8, 0, 0, 0, 0, loc),
		Weekdays:   []int{1, 3},
	}

	starts, err := ExpandRecurrence(req, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(starts) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(starts))
	}
	if starts[0].Day() != 3 || starts[1].Day() != 8 {
		t.Fatalf("expected days 3 and 8, got %d and %d", starts[0].Day(), starts[1].Day())
	}
}

func TestExpandRecurrence_RejectsSunday(t *testing.T) {
	req := models.RecurrenceRequest{
		FirstStart: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		UntilDate:  time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		Weekdays:   []int{1, 7},
	}
	if _, err := ExpandRecurrence(req, 200); !errors.Is(err, ErrInvalidWeekday) {
		t.Fatalf("expected ErrInvalidWeekday, got %v", err)
	}

	req.Weekdays = []int{0}
	if _, err := ExpandRecurrence(req, 200); !errors.Is(err, ErrInvalidWeekday) {
		t.Fatalf("expected ErrInvalidWeekday for 0, got %v", err)
	}
}

func TestExpandRecurrence_EmptyWeekdays(t *testing.T) {
	req := models.RecurrenceRequest{
		FirstStart: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		UntilDate:  time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}
	if _, err := ExpandRecurrence(req, 200); !errors.Is(err, ErrEmptyWeekdays) {
		t.Fatalf("expected ErrEmptyWeekdays, got %v", err)
	}
}

func TestExpandRecurrence_CapRejectsWholeBatch(t *testing.T) {
	// Six days a week over a year expands far past 200.
	req := models.RecurrenceRequest{
		FirstStart: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		UntilDate:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Weekdays:   []int{1, 2, 3, 4, 5, 6},
	}
	if _, err := ExpandRecurrence(req, 200); !errors.Is(err, ErrRecurrenceCap) {
		t.Fatalf("expected ErrRecurrenceCap, got %v", err)
	}
}

func TestCreateSeries_CapLeavesNoSideEffects(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newTestService(repo)

	template := studioAppointment("", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 60)
	req := models.RecurrenceRequest{
		FirstStart: template.Start,
		UntilDate:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Weekdays:   []int{1, 2, 3, 4, 5, 6},
	}

	if _, err := svc.CreateSeries(context.Background(), template, req); !errors.Is(err, ErrRecurrenceCap) {
		t.Fatalf("expected ErrRecurrenceCap, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected zero inserts on cap rejection, got %d", repo.insertCalls)
	}
}

func TestCreateSeries_InsertsOneBatch(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newTestService(repo)

	template := studioAppointment("", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 45)
	req := models.RecurrenceRequest{
		FirstStart: template.Start,
		UntilDate:  time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		Weekdays:   []int{1, 3, 5},
	}

	appts, err := svc.CreateSeries(context.Background(), template, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 6 {
		t.Fatalf("expected 6 appointments, got %d", len(appts))
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected a single batch insert, got %d", repo.insertCalls)
	}
	for i := range appts {
		if got := appts[i].End.Sub(appts[i].Start); got != 45*time.Minute {
			t.Errorf("occurrence %d: expected 45m duration, got %s", i, got)
		}
	}
}
