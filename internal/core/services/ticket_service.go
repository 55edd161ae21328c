package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

type TicketService struct {
	bookings  ports.BookingAPI
	snapshots ports.SnapshotStore
}

func NewTicketService(bookings ports.BookingAPI, snapshots ports.SnapshotStore) *TicketService {
	return &TicketService{bookings: bookings, snapshots: snapshots}
}

// Current returns the last paid booking as stored locally, without asking
// the backend.
func (s *TicketService) Current(ctx context.Context) (*domain.Ticket, error) {
	t, err := s.snapshots.CurrentBooking(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ticket snapshot: %w", err)
	}
	if t == nil {
		return nil, domain.ErrNoCurrentBooking
	}
	return t, nil
}

// History lists the user's bookings, newest first.
func (s *TicketService) History(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListUserBookings(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}
