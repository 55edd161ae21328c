package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

func (c *Client) CreateBooking(ctx context.Context, draft domain.BookingDraft) (string, error) {
	r := request{method: http.MethodPost, path: "/bookings", body: bookingBodyFrom(draft)}
	if draft.IdempotencyKey != "" {
		r.headers = map[string]string{"Idempotency-Key": draft.IdempotencyKey}
	}
	body, err := c.do(ctx, r)
	if err != nil {
		return "", err
	}
	id, err := NormalizeBookingID(body)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	return id, nil
}

// ListBookings returns the bookings of a screening. The screening filter is
// applied again locally in case the backend ignores the query.
func (c *Client) ListBookings(ctx context.Context, screeningID string) ([]domain.Booking, error) {
	q := url.Values{}
	if screeningID != "" {
		q.Set("screeningId", screeningID)
	}
	var out []bookingDTO
	if err := c.getJSON(ctx, "/bookings", q, &out); err != nil {
		return nil, err
	}
	bookings := make([]domain.Booking, 0, len(out))
	for _, d := range out {
		b := d.toDomain()
		if screeningID != "" && b.ScreeningID != "" && b.ScreeningID != screeningID {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var out bookingDTO
	if err := c.getJSON(ctx, "/bookings/"+url.PathEscape(bookingID), nil, &out); err != nil {
		return nil, err
	}
	b := out.toDomain()
	return &b, nil
}

func (c *Client) UpdateBooking(ctx context.Context, bookingID string, draft domain.BookingDraft) error {
	return c.send(ctx, http.MethodPut, "/bookings/"+url.PathEscape(bookingID), bookingBodyFrom(draft), nil)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.PaymentStatus, method string) error {
	body := struct {
		PaymentStatus string `json:"paymentStatus"`
		PaymentMethod string `json:"paymentMethod,omitempty"`
	}{string(status), method}
	return c.send(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/status", body, nil)
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.send(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/cancel", struct{}{}, nil)
}

func (c *Client) ListUserBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []bookingDTO
	if err := c.getJSON(ctx, "/bookings/user", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, bookingDTO.toDomain), nil
}
