package entity

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// BookingStatusPendingPayment is the pre-lifecycle state between booking
	// creation and payment capture.
	BookingStatusPendingPayment BookingStatus = "pending_payment"

	// Service lifecycle, in strict order. Entered at confirmed immediately
	// after payment success; completed is terminal.
	BookingStatusConfirmed         BookingStatus = "confirmed"
	BookingStatusTherapistAssigned BookingStatus = "therapist-assigned"
	BookingStatusEnRoute           BookingStatus = "en-route"
	BookingStatusArrived           BookingStatus = "arrived"
	BookingStatusInProgress        BookingStatus = "in-progress"
	BookingStatusCompleted         BookingStatus = "completed"

	// BookingStatusCancelled is reachable only through the cancel operation,
	// never through Advance.
	BookingStatusCancelled BookingStatus = "cancelled"
)

// lifecycleOrder is the forward-only service progression. No skipping, no
// going back.
var lifecycleOrder = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusTherapistAssigned,
	BookingStatusEnRoute,
	BookingStatusArrived,
	BookingStatusInProgress,
	BookingStatusCompleted,
}

var lifecycleNext = buildLifecycleNext()

func buildLifecycleNext() map[BookingStatus]BookingStatus {
	next := make(map[BookingStatus]BookingStatus, len(lifecycleOrder)-1)
	for i := 0; i < len(lifecycleOrder)-1; i++ {
		next[lifecycleOrder[i]] = lifecycleOrder[i+1]
	}
	return next
}

// LifecycleStates returns the ordered service progression.
func LifecycleStates() []BookingStatus {
	out := make([]BookingStatus, len(lifecycleOrder))
	copy(out, lifecycleOrder)
	return out
}

// Next returns the state that follows s in the lifecycle. The second return
// is false when s is terminal or not part of the lifecycle.
func (s BookingStatus) Next() (BookingStatus, bool) {
	next, ok := lifecycleNext[s]
	return next, ok
}

// InLifecycle reports whether s belongs to the service progression.
func (s BookingStatus) InLifecycle() bool {
	if s == BookingStatusCompleted {
		return true
	}
	_, ok := lifecycleNext[s]
	return ok
}

// IsTerminal reports whether s ends the lifecycle.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted
}

// CanTransition reports whether from -> to is a legal forward step.
func CanTransition(from, to BookingStatus) bool {
	next, ok := lifecycleNext[from]
	return ok && next == to
}

// StatusInfo is the presentation projection for a lifecycle state: what the
// tracking screen shows. Derived data only; not part of the booking state.
type StatusInfo struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	EstimatedArrival string `json:"estimated_arrival,omitempty"`
}

var statusPresentation = map[BookingStatus]StatusInfo{
	BookingStatusConfirmed: {
		Title:       "Booking Confirmed",
		Description: "We are assigning a therapist for your appointment",
		Icon:        "check",
		Color:       "primary-600",
	},
	BookingStatusTherapistAssigned: {
		Title:       "Therapist Assigned",
		Description: "Your therapist is preparing to come to your location",
		Icon:        "therapist",
		Color:       "purple-600",
	},
	BookingStatusEnRoute: {
		Title:            "On the Way",
		Description:      "Your therapist is traveling to your location",
		Icon:             "car",
		Color:            "warning-600",
		EstimatedArrival: "15 mins",
	},
	BookingStatusArrived: {
		Title:            "Therapist Arrived",
		Description:      "Your therapist has reached your location",
		Icon:             "pin",
		Color:            "success-600",
		EstimatedArrival: "Arrived",
	},
	BookingStatusInProgress: {
		Title:       "Service in Progress",
		Description: "Your spa session is currently ongoing",
		Icon:        "spa",
		Color:       "primary-600",
	},
	BookingStatusCompleted: {
		Title:       "Service Completed",
		Description: "Thank you for choosing our service!",
		Icon:        "celebrate",
		Color:       "success-600",
	},
}

var statusFallback = StatusInfo{
	Title:       "Processing",
	Description: "Please wait...",
	Icon:        "hourglass",
	Color:       "gray-600",
}

// Presentation returns the display projection for s. Unknown states get an
// explicit fallback rather than an error.
func (s BookingStatus) Presentation() StatusInfo {
	if info, ok := statusPresentation[s]; ok {
		return info
	}
	return statusFallback
}
