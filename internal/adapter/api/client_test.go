package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/adapter/api"
	"github.com/srgjo27/cineticket/internal/core/domain"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

func newServer(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/api", srv.Client(), staticToken("tok-123"))
}

func TestClient_SendsBearerAndDecodesEnvelope(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/public", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Correlation-Id"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":[{"_id":"m1","title":"Dune","genre":"Sci-Fi, Drama","duration":155,"releaseDate":"2026-10-01","status":"now-showing","posterUrl":"p.jpg"}]}`)
	})

	movies, err := c.ListPublicMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "m1", movies[0].ID)
	assert.Equal(t, domain.MovieNowShowing, movies[0].Status)
	assert.Equal(t, 155, movies[0].Duration)
	assert.Equal(t, "p.jpg", movies[0].PosterURL)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), movies[0].ReleaseDate)
}

func TestClient_DecodesBareList(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"_id":"t1","name":"CGV Vincom","isActive":true,"screenCount":6}]`)
	})

	theaters, err := c.ListTheaters(context.Background())
	require.NoError(t, err)
	require.Len(t, theaters, 1)
	assert.Equal(t, "CGV Vincom", theaters[0].Name)
	assert.True(t, theaters[0].IsActive)
}

func TestClient_MapsErrorStatuses(t *testing.T) {
	cases := []struct {
		status int
		body   string
		kind   domain.ErrorKind
		msg    string
	}{
		{http.StatusUnauthorized, `{"message":"jwt expired"}`, domain.KindUnauthorized, "jwt expired"},
		{http.StatusNotFound, `{"error":"screening not found"}`, domain.KindNotFound, "screening not found"},
		{http.StatusConflict, `{"error":{"message":"conflict"}}`, domain.KindConflict, "conflict"},
		{http.StatusBadRequest, `{"message":"Seat F7 already booked"}`, domain.KindConflict, "Seat F7 already booked"},
		{http.StatusBadRequest, `{"message":"seats required"}`, domain.KindValidation, "seats required"},
		{http.StatusInternalServerError, `oops`, domain.KindServer, "oops"},
	}

	for _, tc := range cases {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			io.WriteString(w, tc.body)
		})
		_, err := c.GetScreening(context.Background(), "s1")
		require.Error(t, err)

		var apiErr *domain.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.kind, apiErr.Kind, tc.body)
		assert.Equal(t, tc.msg, apiErr.Message)
		assert.Equal(t, tc.status, apiErr.StatusCode)
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := api.New(srv.URL, nil, nil)

	_, err := c.ListRooms(context.Background())
	assert.True(t, domain.IsKind(err, domain.KindNetwork))
}

func TestClient_ScreeningWithPopulatedRefs(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "t1", r.URL.Query().Get("theaterId"))
		assert.Equal(t, "m1", r.URL.Query().Get("movieId"))
		io.WriteString(w, `[{"_id":"s1","movieId":{"_id":"m1","title":"Dune"},"theaterId":"t1","room":"Room 3","startTime":"2026-10-17T19:30:00Z","ticketPrice":200000}]`)
	})

	screenings, err := c.ListPublicScreenings(context.Background(), "t1", "m1")
	require.NoError(t, err)
	require.Len(t, screenings, 1)
	s := screenings[0]
	assert.Equal(t, "m1", s.MovieID)
	assert.Equal(t, "t1", s.TheaterID)
	assert.Equal(t, "Room 3", s.Room)
	assert.Equal(t, int64(200000), s.Price)
	assert.Equal(t, 19, s.StartTime.Hour())
}

func TestClient_ScreeningSeats(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/seats/screening/s1", r.URL.Path)
		io.WriteString(w, `{"data":[{"seatNumber":"f7","status":"booked"},{"seatNumber":"A1","status":"reserved","type":"VIP"},{"seatId":"B2","status":"available","isVip":true}]}`)
	})

	seats, err := c.GetScreeningSeats(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Seat{
		{ID: "F7", Status: domain.SeatOccupied},
		{ID: "A1", Status: domain.SeatPending, VIP: true},
		{ID: "B2", Status: domain.SeatAvailable, VIP: true},
	}, seats)
}

func TestClient_CreateBookingSendsExplicitNulls(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		for _, k := range []string{"promotionId", "promotionCode", "discountAmount"} {
			v, present := body[k]
			assert.True(t, present, k)
			assert.Nil(t, v, k)
		}
		assert.Equal(t, "pending", body["paymentStatus"])
		assert.Equal(t, []any{"F7", "F8"}, body["seats"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"success":true,"booking":{"_id":"b42"}}`)
	})

	id, err := c.CreateBooking(context.Background(), domain.BookingDraft{
		UserID:         "u1",
		ScreeningID:    "s1",
		Seats:          []string{"F7", "F8"},
		Status:         domain.PaymentPending,
		TotalPrice:     400000,
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "b42", id)
}

func TestClient_ListBookingsFiltersScreening(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s1", r.URL.Query().Get("screeningId"))
		io.WriteString(w, `[{"_id":"b1","screeningId":"s1","seats":["A1"],"paymentStatus":"Paid"},{"_id":"b2","screeningId":{"_id":"s2"},"seats":["A2"],"paymentStatus":"pending"}]`)
	})

	bookings, err := c.ListBookings(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.PaymentPaid, bookings[0].Status)
}

func TestClient_ValidatePromotionShapes(t *testing.T) {
	bodies := []string{
		`{"valid":true,"promotion":{"_id":"p1","code":"SAVE2","discountType":"percentage","value":2,"isActive":true,"status":"approved"}}`,
		`{"data":{"_id":"p1","code":"SAVE2","discountType":"percent","discountValue":2,"isActive":true,"status":"APPROVED"}}`,
		`{"_id":"p1","code":"SAVE2","discountType":"percent","value":2,"isActive":true,"status":"approved"}`,
	}
	for _, b := range bodies {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "SAVE2", in["code"])
			io.WriteString(w, b)
		})
		p, err := c.ValidatePromotion(context.Background(), "SAVE2")
		require.NoError(t, err, b)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, domain.DiscountPercent, p.DiscountType)
		assert.Equal(t, 2.0, p.Value)
		assert.Equal(t, domain.PromotionApproved, p.Status)
	}

	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"valid":false,"message":"expired"}`)
	})
	_, err := c.ValidatePromotion(context.Background(), "OLD")
	assert.ErrorIs(t, err, domain.ErrPromotionInvalid)
}

func TestClient_Login(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		io.WriteString(w, `{"data":{"token":"jwt","user":{"_id":"u1","fullName":"Lan","email":"lan@example.com"}}}`)
	})

	s, err := c.Login(context.Background(), "lan@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt", s.Token)
	assert.Equal(t, "u1", s.User.ID)
	assert.Equal(t, "Lan", s.User.Name)
}

func TestClient_UpdateBookingStatus(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/b1/status", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "paid", in["paymentStatus"])
		assert.Equal(t, "card", in["paymentMethod"])
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.UpdateBookingStatus(context.Background(), "b1", domain.PaymentPaid, "card"))
}
