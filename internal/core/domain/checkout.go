package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// bookingKeySpace namespaces idempotency keys derived for booking creation.
var bookingKeySpace = uuid.MustParse("5b1f7c2e-3d4a-4f8e-9a61-0c2b7d9e4f10")

// BookingKey derives a stable idempotency key for a booking of seats by user
// for screening. Seat order does not matter.
func BookingKey(userID, screeningID string, seats []string) string {
	sorted := append([]string(nil), seats...)
	sort.Strings(sorted)
	name := userID + "|" + screeningID + "|" + strings.Join(sorted, ",")
	return uuid.NewSHA1(bookingKeySpace, []byte(name)).String()
}

// PaymentHandoff carries everything the payment step needs once seats are
// reserved. It is what the seat screen passes forward on navigation.
type PaymentHandoff struct {
	BookingID      string    `json:"bookingId"`
	IdempotencyKey string    `json:"idempotencyKey"`
	UserID         string    `json:"userId"`
	ScreeningID    string    `json:"screeningId"`
	MovieID        string    `json:"movieId"`
	MovieTitle     string    `json:"movieTitle"`
	TheaterID      string    `json:"theaterId"`
	TheaterName    string    `json:"theaterName"`
	Room           string    `json:"room"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	StartTime      time.Time `json:"startTime"`
	Seats          []string  `json:"seats"`
	TicketPrice    int64     `json:"ticketPrice"`
	Subtotal       int64     `json:"subtotal"`
	Discount       int64     `json:"discount"`
	Total          int64     `json:"total"`
	PromotionID    string    `json:"promotionId,omitempty"`
	PromotionCode  string    `json:"promotionCode,omitempty"`
}
