package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/services"
)

func handoff() domain.PaymentHandoff {
	return domain.PaymentHandoff{
		BookingID:      "b1",
		IdempotencyKey: "key-1",
		UserID:         "u1",
		ScreeningID:    "s1",
		MovieTitle:     "Dune",
		TheaterName:    "CGV Vincom",
		Room:           "Room 3",
		StartTime:      showStart,
		Seats:          []string{"F7"},
		TicketPrice:    200000,
		Subtotal:       200000,
		Discount:       10000,
		Total:          190000,
		PromotionID:    "p-FLAT10K",
		PromotionCode:  "FLAT10K",
	}
}

func TestQuote(t *testing.T) {
	h := handoff()
	subtotal, discount, total := services.Quote(h)
	assert.Equal(t, int64(200000), subtotal)
	assert.Equal(t, int64(10000), discount)
	assert.Equal(t, int64(190000), total)

	h.TicketPrice = 50000
	h.Discount = 100000
	_, discount, total = services.Quote(h)
	assert.Equal(t, int64(50000), discount)
	assert.Equal(t, int64(0), total)
}

func TestPay_MarksPendingBookingPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	h := handoff()
	require.NoError(t, f.snapshots.SavePendingCheckout(ctx, h))

	f.bookings.On("GetBooking", mock.Anything, "b1").Return(&domain.Booking{ID: "b1", Status: domain.PaymentPending}, nil).Once()
	f.processor.On("Charge", mock.Anything, "key-1", int64(190000), "momo").Return(nil).Once()
	f.bookings.On("UpdateBookingStatus", mock.Anything, "b1", domain.PaymentPaid, "momo").Return(nil).Once()

	ticket, err := f.payment.PayPending(ctx, "momo")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, ticket.Status)
	assert.Equal(t, int64(190000), ticket.Total)

	current, err := f.tickets.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b1", current.BookingID)
	assert.Equal(t, "Dune", current.MovieTitle)
	assert.Equal(t, "momo", current.PaymentMethod)

	pending, err := f.snapshots.PendingCheckout(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestPay_WithoutBookingCreatesPaidBooking(t *testing.T) {
	f := newFixture(t)
	h := handoff()
	h.BookingID = ""

	f.processor.On("Charge", mock.Anything, "key-1", int64(190000), "card").Return(nil).Once()
	f.bookings.On("CreateBooking", mock.Anything, mock.MatchedBy(func(d domain.BookingDraft) bool {
		return d.Status == domain.PaymentPaid &&
			d.IdempotencyKey == "key-1" &&
			d.PaymentMethod == "card" &&
			d.TotalPrice == 190000 &&
			d.DiscountAmount != nil && *d.DiscountAmount == 10000
	})).Return("b9", nil).Once()

	ticket, err := f.payment.Pay(context.Background(), h, "card")
	require.NoError(t, err)
	assert.Equal(t, "b9", ticket.BookingID)
}

func TestPay_DeclinedMarksBookingFailed(t *testing.T) {
	f := newFixture(t)

	f.bookings.On("GetBooking", mock.Anything, "b1").Return(&domain.Booking{ID: "b1", Status: domain.PaymentPending}, nil).Once()
	f.processor.On("Charge", mock.Anything, "key-1", int64(190000), "card").Return(errors.New("card declined")).Once()
	f.bookings.On("UpdateBookingStatus", mock.Anything, "b1", domain.PaymentFailed, "card").Return(nil).Once()

	_, err := f.payment.Pay(context.Background(), handoff(), "card")
	assert.ErrorContains(t, err, "card declined")

	_, err = f.tickets.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCurrentBooking)
}

func TestPay_RefusesSettledBooking(t *testing.T) {
	f := newFixture(t)

	f.bookings.On("GetBooking", mock.Anything, "b1").Return(&domain.Booking{ID: "b1", Status: domain.PaymentCancelled}, nil).Once()

	_, err := f.payment.Pay(context.Background(), handoff(), "card")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	f.processor.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.payment.Pay(context.Background(), handoff(), "bitcoin")
	assert.ErrorIs(t, err, domain.ErrUnknownPaymentMethod)

	_, err = f.payment.PayPending(context.Background(), "card")
	assert.ErrorIs(t, err, domain.ErrNoPendingCheckout)

	assert.Len(t, f.payment.Methods(), 4)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.snapshots.SavePendingCheckout(ctx, handoff()))

	f.bookings.On("GetBooking", mock.Anything, "b1").Return(&domain.Booking{ID: "b1", Status: domain.PaymentPending}, nil).Once()
	f.bookings.On("CancelBooking", mock.Anything, "b1").Return(nil).Once()

	require.NoError(t, f.payment.Cancel(ctx, "b1"))
	pending, err := f.snapshots.PendingCheckout(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)

	f.bookings.On("GetBooking", mock.Anything, "b2").Return(&domain.Booking{ID: "b2", Status: domain.PaymentPaid}, nil).Once()
	assert.ErrorIs(t, f.payment.Cancel(ctx, "b2"), domain.ErrInvalidTransition)

	f.bookings.On("GetBooking", mock.Anything, "b3").Return(nil, domain.ClassifyStatus(http.StatusNotFound, "")).Once()
	assert.True(t, domain.IsKind(f.payment.Cancel(ctx, "b3"), domain.KindNotFound))
}
