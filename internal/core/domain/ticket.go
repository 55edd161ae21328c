package domain

import "time"

// Ticket is the e-ticket view of a booking, rendered from the locally stored
// snapshot without a refetch.
type Ticket struct {
	BookingID     string        `json:"bookingId"`
	MovieTitle    string        `json:"movieTitle"`
	TheaterName   string        `json:"theaterName"`
	Room          string        `json:"room"`
	StartTime     time.Time     `json:"startTime"`
	Seats         []string      `json:"seats"`
	TicketPrice   int64         `json:"ticketPrice"`
	Discount      int64         `json:"discount"`
	Total         int64         `json:"total"`
	PromotionCode string        `json:"promotionCode,omitempty"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
}
