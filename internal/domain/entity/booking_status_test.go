package entity

import "testing"

func TestAdvanceWalksFullLifecycle(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}

	want := []BookingStatus{
		BookingStatusTherapistAssigned,
		BookingStatusEnRoute,
		BookingStatusArrived,
		BookingStatusInProgress,
		BookingStatusCompleted,
	}

	for i, expected := range want {
		got := b.Advance()
		if got != expected {
			t.Fatalf("advance %d: got %s, want %s", i+1, got, expected)
		}
	}

	// Terminal state is idempotent: a sixth advance stays completed.
	if got := b.Advance(); got != BookingStatusCompleted {
		t.Fatalf("advance past terminal: got %s, want %s", got, BookingStatusCompleted)
	}
	if b.Status != BookingStatusCompleted {
		t.Fatalf("terminal advance mutated status to %s", b.Status)
	}
}

func TestAdvanceOutsideLifecycleIsNoop(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusPendingPayment, BookingStatusCancelled} {
		b := &Booking{Status: status}
		if got := b.Advance(); got != status {
			t.Fatalf("advance from %s: got %s, want unchanged", status, got)
		}
	}
}

func TestCanTransitionForwardOnly(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusConfirmed, BookingStatusTherapistAssigned, true},
		{BookingStatusTherapistAssigned, BookingStatusEnRoute, true},
		{BookingStatusEnRoute, BookingStatusArrived, true},
		{BookingStatusArrived, BookingStatusInProgress, true},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		// no skipping
		{BookingStatusConfirmed, BookingStatusEnRoute, false},
		// no going back
		{BookingStatusArrived, BookingStatusEnRoute, false},
		// cancelled is not a lifecycle transition
		{BookingStatusConfirmed, BookingStatusCancelled, false},
		// terminal has no exit
		{BookingStatusCompleted, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestResetReturnsToConfirmed(t *testing.T) {
	b := &Booking{Status: BookingStatusArrived}
	b.Reset()
	if b.Status != BookingStatusConfirmed {
		t.Fatalf("reset: got %s, want %s", b.Status, BookingStatusConfirmed)
	}
}

func TestPresentationIsPure(t *testing.T) {
	for _, status := range LifecycleStates() {
		first := status.Presentation()
		second := status.Presentation()
		if first != second {
			t.Fatalf("presentation for %s is not stable", status)
		}
		if first.Title == "" || first.Description == "" {
			t.Fatalf("presentation for %s missing title or description", status)
		}
	}

	// ETA strings exist only for the two travel states.
	if eta := BookingStatusEnRoute.Presentation().EstimatedArrival; eta != "15 mins" {
		t.Fatalf("en-route ETA: got %q", eta)
	}
	if eta := BookingStatusArrived.Presentation().EstimatedArrival; eta != "Arrived" {
		t.Fatalf("arrived ETA: got %q", eta)
	}
	if eta := BookingStatusConfirmed.Presentation().EstimatedArrival; eta != "" {
		t.Fatalf("confirmed must have no ETA, got %q", eta)
	}

	// Unknown states fall back to the placeholder instead of failing.
	if info := BookingStatus("mystery").Presentation(); info.Title != "Processing" {
		t.Fatalf("unknown status fallback: got %q", info.Title)
	}
}
