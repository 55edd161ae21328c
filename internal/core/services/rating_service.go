package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

// RatingService is the device-local rating and comment feature. Averages
// come from the current ratings only; the comment log feeds the review list.
type RatingService struct {
	auth     *AuthService
	ratings  ports.CurrentRatingStore
	comments ports.CommentLog
	now      ports.Clock
}

func NewRatingService(auth *AuthService, ratings ports.CurrentRatingStore, comments ports.CommentLog, now ports.Clock) *RatingService {
	if now == nil {
		now = time.Now
	}
	return &RatingService{auth: auth, ratings: ratings, comments: comments, now: now}
}

// Rate sets the user's current rating of movieID. Zero removes it.
func (s *RatingService) Rate(ctx context.Context, movieID string, rating int) error {
	if !domain.ValidRating(rating) {
		return domain.ErrInvalidRating
	}
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if rating == 0 {
		return s.ratings.Clear(ctx, user.ID, movieID)
	}
	return s.ratings.Set(ctx, user.ID, movieID, rating)
}

func (s *RatingService) ClearRating(ctx context.Context, movieID string) error {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return s.ratings.Clear(ctx, user.ID, movieID)
}

// MyRating returns the signed-in user's current rating of movieID.
func (s *RatingService) MyRating(ctx context.Context, movieID string) (int, bool) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return 0, false
	}
	v, ok, err := s.ratings.Get(ctx, user.ID, movieID)
	if err != nil {
		log.Warn().Err(err).Str("movie_id", movieID).Msg("rating store unavailable")
		return 0, false
	}
	return v, ok
}

type CommentInput struct {
	Text      string
	Anonymous bool
	ImageRef  string
}

// Comment appends a review carrying the user's rating at this moment.
func (s *RatingService) Comment(ctx context.Context, movieID string, in CommentInput) (*domain.MovieReview, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && in.ImageRef == "" {
		return nil, domain.ErrEmptyComment
	}
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	rating, _, err := s.ratings.Get(ctx, user.ID, movieID)
	if err != nil {
		log.Warn().Err(err).Str("movie_id", movieID).Msg("rating store unavailable, comment saved unrated")
		rating = 0
	}

	review := domain.MovieReview{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		MovieID:     movieID,
		Rating:      rating,
		Comment:     text,
		AuthorName:  user.Name,
		AuthorEmail: user.Email,
		Anonymous:   in.Anonymous,
		ImageRef:    in.ImageRef,
		CreatedAt:   s.now(),
	}
	if err := s.comments.Append(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Average is the mean of the current ratings of movieID and how many users
// rated it. Storage failures yield (0, 0).
func (s *RatingService) Average(ctx context.Context, movieID string) (float64, int) {
	ratings, err := s.ratings.ListByMovie(ctx, movieID)
	if err != nil {
		log.Warn().Err(err).Str("movie_id", movieID).Msg("rating store unavailable")
		return 0, 0
	}
	var sum, n int
	for _, r := range ratings {
		if r <= 0 {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return float64(sum) / float64(n), n
}

// Reviews returns the comment feed of movieID, newest first.
func (s *RatingService) Reviews(ctx context.Context, movieID string) []domain.MovieReview {
	reviews, err := s.comments.List(ctx, movieID)
	if err != nil {
		log.Warn().Err(err).Str("movie_id", movieID).Msg("comment log unavailable")
		return nil
	}
	out := make([]domain.MovieReview, len(reviews))
	for i, r := range reviews {
		out[len(reviews)-1-i] = r
	}
	return out
}
