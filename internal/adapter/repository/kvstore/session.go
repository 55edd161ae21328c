package kvstore

import (
	"context"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

const (
	sessionKey        = "session"
	currentBookingKey = "booking:current"
	pendingCheckout   = "checkout:pending"
)

// SessionStore persists the auth token and profile of the signed-in user.
// It doubles as the token source of the API client.
type SessionStore struct {
	kv ports.KeyValueStore
}

func NewSessionStore(kv ports.KeyValueStore) *SessionStore {
	return &SessionStore{kv: kv}
}

func (s *SessionStore) Save(ctx context.Context, session domain.AuthSession) error {
	return setJSON(ctx, s.kv, sessionKey, session)
}

// Load returns nil when nobody is signed in.
func (s *SessionStore) Load(ctx context.Context) (*domain.AuthSession, error) {
	return getJSON[domain.AuthSession](ctx, s.kv, sessionKey)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}

func (s *SessionStore) Token(ctx context.Context) (string, error) {
	sess, err := s.Load(ctx)
	if err != nil || sess == nil {
		return "", err
	}
	return sess.Token, nil
}

// SnapshotStore keeps the booking shown on the e-ticket screen and the
// checkout handed from seat selection to payment.
type SnapshotStore struct {
	kv ports.KeyValueStore
}

func NewSnapshotStore(kv ports.KeyValueStore) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

func (s *SnapshotStore) SaveCurrentBooking(ctx context.Context, ticket domain.Ticket) error {
	return setJSON(ctx, s.kv, currentBookingKey, ticket)
}

func (s *SnapshotStore) CurrentBooking(ctx context.Context) (*domain.Ticket, error) {
	return getJSON[domain.Ticket](ctx, s.kv, currentBookingKey)
}

func (s *SnapshotStore) SavePendingCheckout(ctx context.Context, handoff domain.PaymentHandoff) error {
	return setJSON(ctx, s.kv, pendingCheckout, handoff)
}

func (s *SnapshotStore) PendingCheckout(ctx context.Context) (*domain.PaymentHandoff, error) {
	return getJSON[domain.PaymentHandoff](ctx, s.kv, pendingCheckout)
}

func (s *SnapshotStore) ClearPendingCheckout(ctx context.Context) error {
	return s.kv.Delete(ctx, pendingCheckout)
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, currentBookingKey, pendingCheckout)
}
