package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"fisioagenda/models"
)

func TestApplyStatus_PaymentCoupling(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	for _, target := range []string{models.StatusBooked, models.StatusConfirmed, models.StatusCancelled} {
		appt := studioAppointment("a1", start, 60)
		appt.Status = models.StatusDone
		appt.Paid = true

		if err := ApplyStatus(&appt, target); err != nil {
			t.Fatalf("transition done -> %s: unexpected error: %v", target, err)
		}
		if appt.Paid {
			t.Errorf("transition done -> %s must clear the payment flag", target)
		}
	}
}

func TestApplyStatus_DoneDoesNotAutoSetPaid(t *testing.T) {
	appt := studioAppointment("a1", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), 60)
	appt.Status = models.StatusConfirmed

	if err := ApplyStatus(&appt, models.StatusDone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Paid {
		t.Fatal("done must not auto-set the payment flag")
	}
	if appt.EffectiveStatus() != models.StatusNotPaid {
		t.Fatalf("done-but-unpaid must report as not_paid, got %s", appt.EffectiveStatus())
	}
}

func TestApplyStatus_CancelledIsTerminal(t *testing.T) {
	appt := studioAppointment("a1", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), 60)
	appt.Status = models.StatusCancelled

	if err := ApplyStatus(&appt, models.StatusBooked); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition out of cancelled, got %v", err)
	}
}

func TestToggleDone_FlipsBetweenDoneAndConfirmed(t *testing.T) {
	appt := studioAppointment("a1", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), 60)
	appt.Status = models.StatusConfirmed
	repo := newFakeApptRepo(appt)
	svc := newTestService(repo)

	got, err := svc.ToggleDone(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusDone {
		t.Fatalf("expected done after first toggle, got %s", got.Status)
	}

	got, err = svc.ToggleDone(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed after second toggle, got %s", got.Status)
	}
}

func TestToggleDone_AwayFromDoneClearsPaid(t *testing.T) {
	appt := studioAppointment("a1", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), 60)
	appt.Status = models.StatusDone
	appt.Paid = true
	repo := newFakeApptRepo(appt)
	svc := newTestService(repo)

	got, err := svc.ToggleDone(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}
	if got.Paid {
		t.Fatal("toggling away from done must clear the payment flag")
	}
}

func TestSetPaid_RequiresDone(t *testing.T) {
	appt := studioAppointment("a1", time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), 60)
	appt.Status = models.StatusConfirmed
	repo := newFakeApptRepo(appt)
	svc := newTestService(repo)

	if _, err := svc.SetPaid(context.Background(), "a1", true); !errors.Is(err, ErrPaymentNotDone) {
		t.Fatalf("expected ErrPaymentNotDone, got %v", err)
	}

	appt.Status = models.StatusDone
	repo = newFakeApptRepo(appt)
	svc = newTestService(repo)
	got, err := svc.SetPaid(context.Background(), "a1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Paid {
		t.Fatal("expected paid flag set")
	}
	if got.EffectiveStatus() != models.StatusDone {
		t.Fatalf("paid done appointment must report done, got %s", got.EffectiveStatus())
	}
}
