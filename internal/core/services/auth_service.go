package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

// tokenClaims covers the claim names the backend has used for the user id.
type tokenClaims struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// parseClaims reads the token payload without checking the signature. The
// client has no key; the server verifies on every request.
func parseClaims(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenExpired reports whether token carries an exp claim at or before now.
// Opaque tokens and tokens without exp never count as expired.
func TokenExpired(token string, now time.Time) bool {
	claims, err := parseClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}

type AuthService struct {
	api       ports.AuthAPI
	sessions  ports.SessionStore
	snapshots ports.SnapshotStore
	ratings   ports.CurrentRatingStore
	comments  ports.CommentLog
	now       ports.Clock
}

func NewAuthService(
	api ports.AuthAPI,
	sessions ports.SessionStore,
	snapshots ports.SnapshotStore,
	ratings ports.CurrentRatingStore,
	comments ports.CommentLog,
	now ports.Clock,
) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		api:       api,
		sessions:  sessions,
		snapshots: snapshots,
		ratings:   ratings,
		comments:  comments,
		now:       now,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &domain.Error{Kind: domain.KindValidation, Message: "Email and password are required."}
	}

	session, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if session.User.ID == "" {
		if claims, err := parseClaims(session.Token); err == nil {
			session.User.ID = firstNonEmpty(claims.ID, claims.UserID, claims.Subject)
		}
	}
	if session.User.Email == "" {
		session.User.Email = email
	}

	if err := s.sessions.Save(ctx, *session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Info().Str("user_id", session.User.ID).Msg("signed in")
	return &session.User, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	if strings.TrimSpace(reg.Email) == "" || reg.Password == "" {
		return &domain.Error{Kind: domain.KindValidation, Message: "Email and password are required."}
	}
	return s.api.Register(ctx, reg)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.api.ForgotPassword(ctx, strings.TrimSpace(email))
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	return s.api.VerifyOTP(ctx, strings.TrimSpace(email), strings.TrimSpace(otp))
}

func (s *AuthService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return s.api.ResetPassword(ctx, strings.TrimSpace(email), strings.TrimSpace(otp), newPassword)
}

// CurrentUser returns the signed-in user from the local session. An expired
// token ends the session.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session store unavailable")
		return nil, fmt.Errorf("%w: %v", domain.ErrNotAuthenticated, err)
	}
	if session == nil || session.Token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if TokenExpired(session.Token, s.now()) {
		log.Info().Str("user_id", session.User.ID).Msg("session token expired")
		if err := s.sessions.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to clear expired session")
		}
		return nil, domain.ErrNotAuthenticated
	}
	if session.User.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return &session.User, nil
}

func (s *AuthService) Profile(ctx context.Context) (*domain.User, error) {
	if _, err := s.CurrentUser(ctx); err != nil {
		return nil, err
	}
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		s.endOnUnauthorized(ctx, err)
		return nil, err
	}
	s.storeUser(ctx, *user)
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, user domain.User) (*domain.User, error) {
	current, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	user.ID = current.ID
	updated, err := s.api.UpdateProfile(ctx, user)
	if err != nil {
		s.endOnUnauthorized(ctx, err)
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = current.ID
	}
	s.storeUser(ctx, *updated)
	return updated, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if _, err := s.CurrentUser(ctx); err != nil {
		return err
	}
	if newPassword == "" {
		return &domain.Error{Kind: domain.KindValidation, Message: "New password is required."}
	}
	err := s.api.ChangePassword(ctx, currentPassword, newPassword)
	s.endOnUnauthorized(ctx, err)
	return err
}

// Logout removes everything this device keeps about the user: session,
// ticket snapshot, pending checkout and the local reviews and ratings.
func (s *AuthService) Logout(ctx context.Context) error {
	errs := []error{
		s.sessions.Clear(ctx),
		s.snapshots.Clear(ctx),
		s.ratings.Purge(ctx),
		s.comments.Purge(ctx),
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	log.Info().Msg("signed out")
	return nil
}

func (s *AuthService) storeUser(ctx context.Context, user domain.User) {
	session, err := s.sessions.Load(ctx)
	if err != nil || session == nil {
		return
	}
	session.User = user
	if err := s.sessions.Save(ctx, *session); err != nil {
		log.Warn().Err(err).Msg("failed to store profile")
	}
}

func (s *AuthService) endOnUnauthorized(ctx context.Context, err error) {
	if !domain.IsKind(err, domain.KindUnauthorized) {
		return
	}
	if err := s.sessions.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear rejected session")
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
