package domain

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

var bookingTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentCancelled, PaymentFailed},
	PaymentPaid:    {PaymentFailed},
}

type Booking struct {
	ID             string
	UserID         string
	ScreeningID    string
	Seats          []string
	TotalPrice     int64
	Status         PaymentStatus
	PaymentMethod  string
	PromotionID    string
	PromotionCode  string
	DiscountAmount int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (b *Booking) CanTransition(to PaymentStatus) bool {
	for _, next := range bookingTransitions[b.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the booking to the given status or returns ErrInvalidTransition.
func (b *Booking) Transition(to PaymentStatus, now time.Time) error {
	if !b.CanTransition(to) {
		return &TransitionError{From: b.Status, To: to}
	}
	b.Status = to
	b.UpdatedAt = now
	return nil
}

func (b *Booking) IsTerminal() bool {
	return len(bookingTransitions[b.Status]) == 0
}

// BookingDraft is the body of a booking-creation request. Promotion fields
// stay nil when no promotion is applied; the backend distinguishes null from
// an absent field on update.
type BookingDraft struct {
	UserID         string
	ScreeningID    string
	Seats          []string
	Status         PaymentStatus
	TotalPrice     int64
	PaymentMethod  string
	PromotionID    *string
	PromotionCode  *string
	DiscountAmount *int64
	IdempotencyKey string
}
