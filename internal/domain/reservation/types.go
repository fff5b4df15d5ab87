package reservation

import (
	"fmt"
	"slices"
	"strings"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {StatusPending, StatusConfirmed},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsActive reports whether the reservation still holds its room.
func (s Status) IsActive() bool {
	return s.IsValid() && s != StatusCancelled
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(statusTransitions[s]) == 0
}

func (s Status) AllowedTransitions() []Status {
	return slices.Clone(statusTransitions[s])
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(statusTransitions[s], next)
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentPaid:     {PaymentRefunded},
	PaymentFailed:   {PaymentPending, PaymentPaid},
	PaymentRefunded: {},
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(strings.ToLower(strings.TrimSpace(s)))
	if !ps.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
	}
	return ps, nil
}

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[p]
	return ok
}

func (p PaymentStatus) IsTerminal() bool {
	return p.IsValid() && len(paymentTransitions[p]) == 0
}

func (p PaymentStatus) AllowedTransitions() []PaymentStatus {
	return slices.Clone(paymentTransitions[p])
}

func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return slices.Contains(paymentTransitions[p], next)
}

// TransitionError carries the rejected from/to pair.
type TransitionError struct {
	Field string
	From  string
	To    string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %s to %s", e.Field, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
