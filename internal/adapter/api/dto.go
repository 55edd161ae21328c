package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

// flexTime accepts RFC 3339 timestamps, plain dates and null.
type flexTime struct{ time.Time }

func (t *flexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

// ref is a reference that the backend sends either as a bare id or as a
// populated document.
type ref struct {
	ID    string
	Name  string
	Title string
}

func (r *ref) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		r.ID = s
		return nil
	}
	var doc struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil
	}
	r.ID = firstNonEmpty(doc.MongoID, doc.ID)
	r.Name = doc.Name
	r.Title = doc.Title
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

type movieDTO struct {
	MongoID       string   `json:"_id"`
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle"`
	Genre         string   `json:"genre"`
	Duration      int      `json:"duration"`
	ReleaseDate   flexTime `json:"releaseDate"`
	Director      string   `json:"director"`
	Cast          []string `json:"cast"`
	Description   string   `json:"description"`
	Poster        string   `json:"poster"`
	PosterURL     string   `json:"posterUrl"`
	Trailer       string   `json:"trailer"`
	TrailerURL    string   `json:"trailerUrl"`
	Rating        float64  `json:"rating"`
	VoteCount     int      `json:"voteCount"`
	Status        string   `json:"status"`
	ShowStatus    string   `json:"showStatus"`
}

func (d movieDTO) toDomain() domain.Movie {
	return domain.Movie{
		ID:            firstNonEmpty(d.MongoID, d.ID),
		Title:         d.Title,
		OriginalTitle: d.OriginalTitle,
		Genre:         d.Genre,
		Duration:      d.Duration,
		ReleaseDate:   d.ReleaseDate.Time,
		Director:      d.Director,
		Cast:          d.Cast,
		Description:   d.Description,
		PosterURL:     firstNonEmpty(d.PosterURL, d.Poster),
		TrailerURL:    firstNonEmpty(d.TrailerURL, d.Trailer),
		Rating:        d.Rating,
		VoteCount:     d.VoteCount,
		Status:        domain.MovieStatus(firstNonEmpty(d.ShowStatus, d.Status)),
	}
}

type theaterDTO struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	IsActive    bool   `json:"isActive"`
	ScreenCount int    `json:"screenCount"`
}

func (d theaterDTO) toDomain() domain.Theater {
	return domain.Theater{
		ID:          firstNonEmpty(d.MongoID, d.ID),
		Name:        d.Name,
		Address:     d.Address,
		Phone:       d.Phone,
		IsActive:    d.IsActive,
		ScreenCount: d.ScreenCount,
	}
}

type roomDTO struct {
	MongoID   string `json:"_id"`
	ID        string `json:"id"`
	TheaterID ref    `json:"theaterId"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
}

func (d roomDTO) toDomain() domain.Room {
	return domain.Room{
		ID:        firstNonEmpty(d.MongoID, d.ID),
		TheaterID: d.TheaterID.ID,
		Name:      d.Name,
		Capacity:  d.Capacity,
	}
}

type screeningDTO struct {
	MongoID     string   `json:"_id"`
	ID          string   `json:"id"`
	MovieID     ref      `json:"movieId"`
	TheaterID   ref      `json:"theaterId"`
	Room        ref      `json:"room"`
	RoomID      ref      `json:"roomId"`
	StartTime   flexTime `json:"startTime"`
	EndTime     flexTime `json:"endTime"`
	Price       int64    `json:"price"`
	TicketPrice int64    `json:"ticketPrice"`
}

func (d screeningDTO) toDomain() domain.Screening {
	price := d.Price
	if price == 0 {
		price = d.TicketPrice
	}
	return domain.Screening{
		ID:        firstNonEmpty(d.MongoID, d.ID),
		MovieID:   d.MovieID.ID,
		TheaterID: d.TheaterID.ID,
		Room:      firstNonEmpty(d.Room.Name, d.Room.ID, d.RoomID.Name, d.RoomID.ID),
		StartTime: d.StartTime.Time,
		EndTime:   d.EndTime.Time,
		Price:     price,
	}
}

type seatDTO struct {
	SeatNumber string `json:"seatNumber"`
	SeatID     string `json:"seatId"`
	Status     string `json:"status"`
	IsVIP      bool   `json:"isVip"`
	Type       string `json:"type"`
}

func seatStatus(s string) domain.SeatStatus {
	switch strings.ToLower(s) {
	case "pending", "reserved", "locked", "holding":
		return domain.SeatPending
	case "booked", "occupied", "sold", "paid":
		return domain.SeatOccupied
	}
	return domain.SeatAvailable
}

func (d seatDTO) toDomain() domain.Seat {
	return domain.Seat{
		ID:     strings.ToUpper(firstNonEmpty(d.SeatNumber, d.SeatID)),
		Status: seatStatus(d.Status),
		VIP:    d.IsVIP || strings.EqualFold(d.Type, "vip"),
	}
}

type bookingDTO struct {
	MongoID        string   `json:"_id"`
	ID             string   `json:"id"`
	UserID         ref      `json:"userId"`
	ScreeningID    ref      `json:"screeningId"`
	Seats          []string `json:"seats"`
	SeatNumbers    []string `json:"seatNumbers"`
	TotalPrice     int64    `json:"totalPrice"`
	PaymentStatus  string   `json:"paymentStatus"`
	PaymentMethod  string   `json:"paymentMethod"`
	PromotionID    ref      `json:"promotionId"`
	PromotionCode  string   `json:"promotionCode"`
	DiscountAmount int64    `json:"discountAmount"`
	CreatedAt      flexTime `json:"createdAt"`
	UpdatedAt      flexTime `json:"updatedAt"`
}

func (d bookingDTO) toDomain() domain.Booking {
	seats := d.Seats
	if len(seats) == 0 {
		seats = d.SeatNumbers
	}
	return domain.Booking{
		ID:             firstNonEmpty(d.MongoID, d.ID),
		UserID:         d.UserID.ID,
		ScreeningID:    d.ScreeningID.ID,
		Seats:          seats,
		TotalPrice:     d.TotalPrice,
		Status:         domain.PaymentStatus(strings.ToLower(d.PaymentStatus)),
		PaymentMethod:  d.PaymentMethod,
		PromotionID:    d.PromotionID.ID,
		PromotionCode:  d.PromotionCode,
		DiscountAmount: d.DiscountAmount,
		CreatedAt:      d.CreatedAt.Time,
		UpdatedAt:      d.UpdatedAt.Time,
	}
}

// bookingBody is the create/update payload. The promotion fields have no
// omitempty: absent promotions are sent as explicit nulls.
type bookingBody struct {
	UserID         string   `json:"userId"`
	ScreeningID    string   `json:"screeningId"`
	Seats          []string `json:"seats"`
	PaymentStatus  string   `json:"paymentStatus"`
	TotalPrice     int64    `json:"totalPrice"`
	PaymentMethod  string   `json:"paymentMethod,omitempty"`
	PromotionID    *string  `json:"promotionId"`
	PromotionCode  *string  `json:"promotionCode"`
	DiscountAmount *int64   `json:"discountAmount"`
}

func bookingBodyFrom(d domain.BookingDraft) bookingBody {
	return bookingBody{
		UserID:         d.UserID,
		ScreeningID:    d.ScreeningID,
		Seats:          d.Seats,
		PaymentStatus:  string(d.Status),
		TotalPrice:     d.TotalPrice,
		PaymentMethod:  d.PaymentMethod,
		PromotionID:    d.PromotionID,
		PromotionCode:  d.PromotionCode,
		DiscountAmount: d.DiscountAmount,
	}
}

type promotionDTO struct {
	MongoID       string   `json:"_id"`
	ID            string   `json:"id"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	DiscountType  string   `json:"discountType"`
	Value         float64  `json:"value"`
	DiscountValue float64  `json:"discountValue"`
	StartDate     flexTime `json:"startDate"`
	EndDate       flexTime `json:"endDate"`
	IsActive      bool     `json:"isActive"`
	Status        string   `json:"status"`
	UsageCount    int      `json:"usageCount"`
	MaxUsage      int      `json:"maxUsage"`
}

func (d promotionDTO) toDomain() domain.Promotion {
	dt := domain.DiscountFixed
	switch strings.ToLower(d.DiscountType) {
	case "percent", "percentage":
		dt = domain.DiscountPercent
	}
	value := d.Value
	if value == 0 {
		value = d.DiscountValue
	}
	return domain.Promotion{
		ID:           firstNonEmpty(d.MongoID, d.ID),
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		DiscountType: dt,
		Value:        value,
		StartDate:    d.StartDate.Time,
		EndDate:      d.EndDate.Time,
		IsActive:     d.IsActive,
		Status:       strings.ToLower(d.Status),
		UsageCount:   d.UsageCount,
		MaxUsage:     d.MaxUsage,
	}
}

type userDTO struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:     firstNonEmpty(d.MongoID, d.ID),
		Name:   firstNonEmpty(d.FullName, d.Name),
		Email:  d.Email,
		Phone:  d.Phone,
		Role:   d.Role,
		Avatar: d.Avatar,
	}
}

func mapSlice[D any, T any](in []D, f func(D) T) []T {
	out := make([]T, 0, len(in))
	for _, d := range in {
		out = append(out, f(d))
	}
	return out
}
