package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
	"github.com/srgjo27/cineticket/internal/platform/cache"
)

// DefaultCatalogTTL is how long movie and screening lists stay fresh.
const DefaultCatalogTTL = 5 * time.Minute

type CatalogService struct {
	movies     ports.MovieAPI
	theaters   ports.TheaterAPI
	screenings ports.ScreeningAPI
	promotions ports.PromotionAPI
	now        ports.Clock

	movieCache     *cache.TTL[[]domain.Movie]
	theaterCache   *cache.TTL[[]domain.Theater]
	screeningCache *cache.Keyed[[]domain.Screening]
}

func NewCatalogService(
	movies ports.MovieAPI,
	theaters ports.TheaterAPI,
	screenings ports.ScreeningAPI,
	promotions ports.PromotionAPI,
	ttl time.Duration,
	now ports.Clock,
) *CatalogService {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogService{
		movies:         movies,
		theaters:       theaters,
		screenings:     screenings,
		promotions:     promotions,
		now:            now,
		movieCache:     cache.NewTTL[[]domain.Movie](ttl, now),
		theaterCache:   cache.NewTTL[[]domain.Theater](ttl, now),
		screeningCache: cache.NewKeyed[[]domain.Screening](ttl, now),
	}
}

func (s *CatalogService) Movies(ctx context.Context) ([]domain.Movie, error) {
	if movies, ok := s.movieCache.Get(); ok {
		return movies, nil
	}
	movies, err := s.movies.ListPublicMovies(ctx)
	if err != nil {
		return nil, err
	}
	s.movieCache.Set(movies)
	log.Debug().Int("count", len(movies)).Msg("movie list refreshed")
	return movies, nil
}

func (s *CatalogService) MoviesByStatus(ctx context.Context, status domain.MovieStatus) ([]domain.Movie, error) {
	movies, err := s.Movies(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Movie
	for _, m := range movies {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

// Movie answers from the cached list when possible.
func (s *CatalogService) Movie(ctx context.Context, movieID string) (*domain.Movie, error) {
	if movies, ok := s.movieCache.Get(); ok {
		for i := range movies {
			if movies[i].ID == movieID {
				m := movies[i]
				return &m, nil
			}
		}
	}
	return s.movies.GetMovie(ctx, movieID)
}

func (s *CatalogService) Theaters(ctx context.Context) ([]domain.Theater, error) {
	if theaters, ok := s.theaterCache.Get(); ok {
		return theaters, nil
	}
	theaters, err := s.theaters.ListTheaters(ctx)
	if err != nil {
		return nil, err
	}
	s.theaterCache.Set(theaters)
	return theaters, nil
}

func (s *CatalogService) Theater(ctx context.Context, theaterID string) (*domain.Theater, error) {
	if theaters, ok := s.theaterCache.Get(); ok {
		for i := range theaters {
			if theaters[i].ID == theaterID {
				t := theaters[i]
				return &t, nil
			}
		}
	}
	return s.theaters.GetTheater(ctx, theaterID)
}

func (s *CatalogService) Rooms(ctx context.Context) ([]domain.Room, error) {
	return s.theaters.ListRooms(ctx)
}

func (s *CatalogService) Screenings(ctx context.Context, theaterID, movieID string) ([]domain.Screening, error) {
	key := theaterID + "|" + movieID
	if screenings, ok := s.screeningCache.Get(key); ok {
		return screenings, nil
	}
	screenings, err := s.screenings.ListPublicScreenings(ctx, theaterID, movieID)
	if err != nil {
		return nil, err
	}
	s.screeningCache.Set(key, screenings)
	return screenings, nil
}

func (s *CatalogService) Screening(ctx context.Context, screeningID string) (*domain.Screening, error) {
	return s.screenings.GetScreening(ctx, screeningID)
}

// ShowtimeDates lists the days on which movieID plays at theaterID.
func (s *CatalogService) ShowtimeDates(ctx context.Context, theaterID, movieID string, loc *time.Location) ([]time.Time, error) {
	screenings, err := s.Screenings(ctx, theaterID, movieID)
	if err != nil {
		return nil, err
	}
	return domain.ScreeningDates(screenings, loc), nil
}

func (s *CatalogService) Showtimes(ctx context.Context, theaterID, movieID string, day time.Time) ([]domain.Screening, error) {
	screenings, err := s.Screenings(ctx, theaterID, movieID)
	if err != nil {
		return nil, err
	}
	return domain.ShowtimesByDate(screenings, day), nil
}

// ActivePromotions returns the promotions usable right now. The backend
// list is filtered again locally since it may lag behind expiry.
func (s *CatalogService) ActivePromotions(ctx context.Context) ([]domain.Promotion, error) {
	promotions, err := s.promotions.ListActivePromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active promotions: %w", err)
	}
	now := s.now()
	var out []domain.Promotion
	for i := range promotions {
		if promotions[i].UsableAt(now) {
			out = append(out, promotions[i])
		}
	}
	return out, nil
}

func (s *CatalogService) Invalidate() {
	s.movieCache.Invalidate()
	s.theaterCache.Invalidate()
	s.screeningCache.Invalidate()
}
