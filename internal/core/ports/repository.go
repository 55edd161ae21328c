package ports

import (
	"context"
	"time"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

type MovieAPI interface {
	ListPublicMovies(ctx context.Context) ([]domain.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*domain.Movie, error)
}

type TheaterAPI interface {
	ListTheaters(ctx context.Context) ([]domain.Theater, error)
	GetTheater(ctx context.Context, theaterID string) (*domain.Theater, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

type ScreeningAPI interface {
	ListPublicScreenings(ctx context.Context, theaterID, movieID string) ([]domain.Screening, error)
	GetScreening(ctx context.Context, screeningID string) (*domain.Screening, error)
}

type SeatAPI interface {
	GetScreeningSeats(ctx context.Context, screeningID string) ([]domain.Seat, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, draft domain.BookingDraft) (string, error)
	ListBookings(ctx context.Context, screeningID string) ([]domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, draft domain.BookingDraft) error
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.PaymentStatus, method string) error
	CancelBooking(ctx context.Context, bookingID string) error
	ListUserBookings(ctx context.Context) ([]domain.Booking, error)
}

type PromotionAPI interface {
	ListPromotions(ctx context.Context) ([]domain.Promotion, error)
	ListActivePromotions(ctx context.Context) ([]domain.Promotion, error)
	ValidatePromotion(ctx context.Context, code string) (*domain.Promotion, error)
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, user domain.User) (*domain.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// KeyValueStore is the device-local persisted store. Single-key reads and
// writes are atomic; nothing else is guaranteed.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type SessionStore interface {
	Save(ctx context.Context, session domain.AuthSession) error
	Load(ctx context.Context) (*domain.AuthSession, error)
	Clear(ctx context.Context) error
}

// SnapshotStore keeps the last paid booking and the checkout in progress.
type SnapshotStore interface {
	SaveCurrentBooking(ctx context.Context, ticket domain.Ticket) error
	CurrentBooking(ctx context.Context) (*domain.Ticket, error)
	SavePendingCheckout(ctx context.Context, handoff domain.PaymentHandoff) error
	PendingCheckout(ctx context.Context) (*domain.PaymentHandoff, error)
	ClearPendingCheckout(ctx context.Context) error
	Clear(ctx context.Context) error
}

// CurrentRatingStore holds the latest rating of each user for each movie.
type CurrentRatingStore interface {
	Set(ctx context.Context, userID, movieID string, rating int) error
	Get(ctx context.Context, userID, movieID string) (int, bool, error)
	Clear(ctx context.Context, userID, movieID string) error
	ListByMovie(ctx context.Context, movieID string) (map[string]int, error)
	Purge(ctx context.Context) error
}

// CommentLog is the append-only per-movie review feed.
type CommentLog interface {
	Append(ctx context.Context, review domain.MovieReview) error
	List(ctx context.Context, movieID string) ([]domain.MovieReview, error)
	Purge(ctx context.Context) error
}

type PaymentProcessor interface {
	Charge(ctx context.Context, bookingKey string, amount int64, method string) error
}

type Clock func() time.Time
