package kvstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

const (
	ratingPrefix = "rating:"
	reviewPrefix = "reviews:"
)

func ratingKey(movieID, userID string) string {
	return ratingPrefix + movieID + ":" + userID
}

// RatingStore holds one current rating per (user, movie) under its own key.
type RatingStore struct {
	kv ports.KeyValueStore
}

func NewRatingStore(kv ports.KeyValueStore) *RatingStore {
	return &RatingStore{kv: kv}
}

func (s *RatingStore) Set(ctx context.Context, userID, movieID string, rating int) error {
	return s.kv.Set(ctx, ratingKey(movieID, userID), strconv.Itoa(rating))
}

func (s *RatingStore) Get(ctx context.Context, userID, movieID string) (int, bool, error) {
	raw, ok, err := s.kv.Get(ctx, ratingKey(movieID, userID))
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("rating %s/%s: %w", movieID, userID, err)
	}
	return v, true, nil
}

func (s *RatingStore) Clear(ctx context.Context, userID, movieID string) error {
	return s.kv.Delete(ctx, ratingKey(movieID, userID))
}

// ListByMovie returns the current rating of every user who rated movieID.
// Unreadable entries are skipped.
func (s *RatingStore) ListByMovie(ctx context.Context, movieID string) (map[string]int, error) {
	prefix := ratingPrefix + movieID + ":"
	keys, err := s.kv.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		raw, ok, err := s.kv.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Str("key", k).Msg("skipping unreadable rating")
			continue
		}
		out[strings.TrimPrefix(k, prefix)] = v
	}
	return out, nil
}

func (s *RatingStore) Purge(ctx context.Context) error {
	return deletePrefix(ctx, s.kv, ratingPrefix)
}

// CommentLog stores the reviews of each movie as one JSON array, oldest
// first.
type CommentLog struct {
	kv ports.KeyValueStore
	mu sync.Mutex
}

func NewCommentLog(kv ports.KeyValueStore) *CommentLog {
	return &CommentLog{kv: kv}
}

func (l *CommentLog) Append(ctx context.Context, review domain.MovieReview) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	reviews, err := l.List(ctx, review.MovieID)
	if err != nil {
		return err
	}
	return setJSON(ctx, l.kv, reviewPrefix+review.MovieID, append(reviews, review))
}

func (l *CommentLog) List(ctx context.Context, movieID string) ([]domain.MovieReview, error) {
	reviews, err := getJSON[[]domain.MovieReview](ctx, l.kv, reviewPrefix+movieID)
	if err != nil || reviews == nil {
		return nil, err
	}
	sort.SliceStable(*reviews, func(i, j int) bool {
		return (*reviews)[i].CreatedAt.Before((*reviews)[j].CreatedAt)
	})
	return *reviews, nil
}

func (l *CommentLog) Purge(ctx context.Context) error {
	return deletePrefix(ctx, l.kv, reviewPrefix)
}
