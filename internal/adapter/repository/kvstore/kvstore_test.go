package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/adapter/repository/kvstore"
	"github.com/srgjo27/cineticket/internal/adapter/repository/memory"
	"github.com/srgjo27/cineticket/internal/core/domain"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewSessionStore(memory.NewStore())

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save(ctx, domain.AuthSession{Token: "jwt", User: domain.User{ID: "u1", Name: "Lan"}}))

	sess, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.User.ID)

	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	require.NoError(t, s.Clear(ctx))
	sess, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewSnapshotStore(memory.NewStore())

	require.NoError(t, s.SavePendingCheckout(ctx, domain.PaymentHandoff{BookingID: "b1", Seats: []string{"F7"}, Total: 200000}))
	require.NoError(t, s.SaveCurrentBooking(ctx, domain.Ticket{BookingID: "b0", Status: domain.PaymentPaid}))

	h, err := s.PendingCheckout(ctx)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "b1", h.BookingID)
	assert.Equal(t, int64(200000), h.Total)

	require.NoError(t, s.ClearPendingCheckout(ctx))
	h, err = s.PendingCheckout(ctx)
	require.NoError(t, err)
	assert.Nil(t, h)

	tk, err := s.CurrentBooking(ctx)
	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, domain.PaymentPaid, tk.Status)

	require.NoError(t, s.Clear(ctx))
	tk, err = s.CurrentBooking(ctx)
	require.NoError(t, err)
	assert.Nil(t, tk)
}

func TestRatingStore_LatestPerUser(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	s := kvstore.NewRatingStore(kv)

	require.NoError(t, s.Set(ctx, "u1", "m1", 8))
	require.NoError(t, s.Set(ctx, "u1", "m1", 6))
	require.NoError(t, s.Set(ctx, "u2", "m1", 9))
	require.NoError(t, s.Set(ctx, "u1", "m10", 2))
	require.NoError(t, kv.Set(ctx, "rating:m1:u3", "garbage"))

	ratings, err := s.ListByMovie(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"u1": 6, "u2": 9}, ratings)

	v, ok, err := s.Get(ctx, "u1", "m1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	require.NoError(t, s.Clear(ctx, "u1", "m1"))
	_, ok, err = s.Get(ctx, "u1", "m1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Purge(ctx))
	ratings, err = s.ListByMovie(ctx, "m10")
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestCommentLog(t *testing.T) {
	ctx := context.Background()
	l := kvstore.NewCommentLog(memory.NewStore())
	base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	require.NoError(t, l.Append(ctx, domain.MovieReview{ID: "r1", MovieID: "m1", Rating: 8, Comment: "great", CreatedAt: base}))
	require.NoError(t, l.Append(ctx, domain.MovieReview{ID: "r2", MovieID: "m1", Rating: 6, Comment: "meh on rewatch", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, l.Append(ctx, domain.MovieReview{ID: "r3", MovieID: "m2", CreatedAt: base}))

	reviews, err := l.List(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r1", reviews[0].ID)
	assert.Equal(t, 6, reviews[1].Rating)

	require.NoError(t, l.Purge(ctx))
	reviews, err = l.List(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
