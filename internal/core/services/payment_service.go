package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

type PaymentMethod struct {
	ID   string
	Name string
}

var paymentMethods = []PaymentMethod{
	{ID: "card", Name: "Credit or debit card"},
	{ID: "momo", Name: "MoMo e-wallet"},
	{ID: "zalopay", Name: "ZaloPay"},
	{ID: "cash", Name: "Pay at the counter"},
}

type PaymentService struct {
	bookings  ports.BookingAPI
	processor ports.PaymentProcessor
	snapshots ports.SnapshotStore
	now       ports.Clock
}

func NewPaymentService(bookings ports.BookingAPI, processor ports.PaymentProcessor, snapshots ports.SnapshotStore, now ports.Clock) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{
		bookings:  bookings,
		processor: processor,
		snapshots: snapshots,
		now:       now,
	}
}

func (s *PaymentService) Methods() []PaymentMethod {
	return append([]PaymentMethod(nil), paymentMethods...)
}

func knownMethod(id string) bool {
	for _, m := range paymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Quote recomputes the amounts of a handoff with the shared pricing rules.
// The discount can never exceed what the seats cost now.
func Quote(h domain.PaymentHandoff) (subtotal, discount, total int64) {
	subtotal = domain.Subtotal(len(h.Seats), h.TicketPrice)
	discount = domain.ClampDiscount(subtotal, h.Discount)
	return subtotal, discount, domain.FinalTotal(subtotal, discount)
}

// Pay charges the handoff and settles its booking. The pending booking made
// at seat selection is moved to paid; a handoff without a booking id gets a
// paid booking created under the same idempotency key. A failed charge
// marks the booking failed.
func (s *PaymentService) Pay(ctx context.Context, h domain.PaymentHandoff, method string) (*domain.Ticket, error) {
	if !knownMethod(method) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPaymentMethod, method)
	}
	if len(h.Seats) == 0 {
		return nil, domain.ErrNoSeatsSelected
	}

	_, discount, total := Quote(h)
	key := h.IdempotencyKey
	if key == "" {
		key = domain.BookingKey(h.UserID, h.ScreeningID, h.Seats)
	}

	if h.BookingID != "" {
		booking, err := s.bookings.GetBooking(ctx, h.BookingID)
		if err != nil {
			return nil, err
		}
		if !booking.CanTransition(domain.PaymentPaid) {
			return nil, &domain.TransitionError{From: booking.Status, To: domain.PaymentPaid}
		}
	}

	if err := s.processor.Charge(ctx, key, total, method); err != nil {
		log.Warn().Err(err).Str("booking_id", h.BookingID).Str("method", method).Msg("payment declined")
		if h.BookingID != "" {
			if uerr := s.bookings.UpdateBookingStatus(ctx, h.BookingID, domain.PaymentFailed, method); uerr != nil {
				log.Error().Err(uerr).Str("booking_id", h.BookingID).Msg("failed to mark booking failed")
			}
		}
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	bookingID := h.BookingID
	if bookingID != "" {
		if err := s.bookings.UpdateBookingStatus(ctx, bookingID, domain.PaymentPaid, method); err != nil {
			return nil, err
		}
	} else {
		draft := domain.BookingDraft{
			UserID:         h.UserID,
			ScreeningID:    h.ScreeningID,
			Seats:          h.Seats,
			Status:         domain.PaymentPaid,
			TotalPrice:     total,
			PaymentMethod:  method,
			IdempotencyKey: key,
		}
		if h.PromotionCode != "" {
			draft.PromotionID = &h.PromotionID
			draft.PromotionCode = &h.PromotionCode
			draft.DiscountAmount = &discount
		}
		id, err := s.bookings.CreateBooking(ctx, draft)
		if err != nil {
			if domain.IsKind(err, domain.KindConflict) {
				return nil, fmt.Errorf("%w: %w", domain.ErrSeatsTaken, err)
			}
			return nil, err
		}
		bookingID = id
	}

	log.Info().Str("booking_id", bookingID).Str("method", method).Int64("total", total).Msg("booking paid")

	ticket := domain.Ticket{
		BookingID:     bookingID,
		MovieTitle:    h.MovieTitle,
		TheaterName:   h.TheaterName,
		Room:          h.Room,
		StartTime:     h.StartTime,
		Seats:         h.Seats,
		TicketPrice:   h.TicketPrice,
		Discount:      discount,
		Total:         total,
		PromotionCode: h.PromotionCode,
		PaymentMethod: method,
		Status:        domain.PaymentPaid,
	}
	if err := s.snapshots.SaveCurrentBooking(ctx, ticket); err != nil {
		log.Warn().Err(err).Msg("failed to store ticket snapshot")
	}
	if err := s.snapshots.ClearPendingCheckout(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear pending checkout")
	}
	return &ticket, nil
}

// PayPending continues the checkout saved by the seat step.
func (s *PaymentService) PayPending(ctx context.Context, method string) (*domain.Ticket, error) {
	h, err := s.snapshots.PendingCheckout(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pending checkout: %w", err)
	}
	if h == nil {
		return nil, domain.ErrNoPendingCheckout
	}
	return s.Pay(ctx, *h, method)
}

// Cancel releases a booking that is still pending.
func (s *PaymentService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := booking.Transition(domain.PaymentCancelled, s.now()); err != nil {
		return err
	}
	if err := s.bookings.CancelBooking(ctx, bookingID); err != nil {
		return err
	}

	if h, err := s.snapshots.PendingCheckout(ctx); err == nil && h != nil && h.BookingID == bookingID {
		if err := s.snapshots.ClearPendingCheckout(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to clear pending checkout")
		}
	}
	log.Info().Str("booking_id", bookingID).Msg("booking cancelled")
	return nil
}
