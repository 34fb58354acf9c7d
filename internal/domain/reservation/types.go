package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo reports whether the booking workflow allows moving from s to next.
// Only pending reservations can be decided, and both decisions are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusConfirmed || next == StatusRejected)
}

// Occupies reports whether a reservation in this status holds a seat in its slot.
func (s Status) Occupies() bool {
	return s != StatusRejected
}
