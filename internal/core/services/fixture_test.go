package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/adapter/repository/kvstore"
	"github.com/srgjo27/cineticket/internal/adapter/repository/memory"
	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports/mocks"
	"github.com/srgjo27/cineticket/internal/core/services"
)

var showStart = time.Date(2026, 10, 18, 19, 30, 0, 0, time.UTC)

type fixture struct {
	now time.Time

	movies     *mocks.MovieAPI
	theaters   *mocks.TheaterAPI
	screenings *mocks.ScreeningAPI
	seats      *mocks.SeatAPI
	bookings   *mocks.BookingAPI
	promotions *mocks.PromotionAPI
	authAPI    *mocks.AuthAPI
	processor  *mocks.PaymentProcessor

	kv        *memory.Store
	sessions  *kvstore.SessionStore
	snapshots *kvstore.SnapshotStore
	ratings   *kvstore.RatingStore
	comments  *kvstore.CommentLog

	catalog   *services.CatalogService
	auth      *services.AuthService
	selection *services.SeatSelectionService
	payment   *services.PaymentService
	tickets   *services.TicketService
	rating    *services.RatingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		now:        time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC),
		movies:     mocks.NewMovieAPI(t),
		theaters:   mocks.NewTheaterAPI(t),
		screenings: mocks.NewScreeningAPI(t),
		seats:      mocks.NewSeatAPI(t),
		bookings:   mocks.NewBookingAPI(t),
		promotions: mocks.NewPromotionAPI(t),
		authAPI:    mocks.NewAuthAPI(t),
		processor:  mocks.NewPaymentProcessor(t),
		kv:         memory.NewStore(),
	}
	clock := func() time.Time { return f.now }

	f.sessions = kvstore.NewSessionStore(f.kv)
	f.snapshots = kvstore.NewSnapshotStore(f.kv)
	f.ratings = kvstore.NewRatingStore(f.kv)
	f.comments = kvstore.NewCommentLog(f.kv)

	f.catalog = services.NewCatalogService(f.movies, f.theaters, f.screenings, f.promotions, 5*time.Minute, clock)
	f.auth = services.NewAuthService(f.authAPI, f.sessions, f.snapshots, f.ratings, f.comments, clock)
	f.selection = services.NewSeatSelectionService(f.catalog, f.seats, f.bookings, f.promotions, f.auth, clock)
	f.payment = services.NewPaymentService(f.bookings, f.processor, f.snapshots, clock)
	f.tickets = services.NewTicketService(f.bookings, f.snapshots)
	f.rating = services.NewRatingService(f.auth, f.ratings, f.comments, clock)
	return f
}

func (f *fixture) signIn(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.sessions.Save(context.Background(), domain.AuthSession{
		Token: "opaque-" + userID,
		User:  domain.User{ID: userID, Name: "User " + userID, Email: userID + "@example.com"},
	}))
}

func (f *fixture) promo(code string, dt domain.DiscountType, value float64) *domain.Promotion {
	return &domain.Promotion{
		ID:           "p-" + code,
		Code:         code,
		DiscountType: dt,
		Value:        value,
		StartDate:    f.now.Add(-24 * time.Hour),
		EndDate:      f.now.Add(7 * 24 * time.Hour),
		IsActive:     true,
		Status:       domain.PromotionApproved,
	}
}

// expectScreen registers the calls made when the seat screen of s1 opens.
func (f *fixture) expectScreen(seats []domain.Seat) {
	f.seats.On("GetScreeningSeats", mock.Anything, "s1").Return(seats, nil).Once()
	f.screenings.On("GetScreening", mock.Anything, "s1").Return(&domain.Screening{
		ID:        "s1",
		MovieID:   "m1",
		TheaterID: "t1",
		Room:      "Room 3",
		StartTime: showStart,
		Price:     200000,
	}, nil).Once()
	f.movies.On("GetMovie", mock.Anything, "m1").Return(&domain.Movie{ID: "m1", Title: "Dune"}, nil).Once()
	f.theaters.On("GetTheater", mock.Anything, "t1").Return(&domain.Theater{ID: "t1", Name: "CGV Vincom"}, nil).Once()
	f.promotions.On("ListActivePromotions", mock.Anything).Return([]domain.Promotion{*f.promo("SAVE2", domain.DiscountPercent, 2)}, nil).Once()
}

func (f *fixture) open(t *testing.T, seats []domain.Seat) *services.SeatSelection {
	t.Helper()
	f.expectScreen(seats)
	sel, err := f.selection.Start(context.Background(), "s1")
	require.NoError(t, err)
	return sel
}
