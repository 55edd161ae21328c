package api

import (
	"context"
	"net/url"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

func (c *Client) ListPublicMovies(ctx context.Context) ([]domain.Movie, error) {
	var out []movieDTO
	if err := c.getJSON(ctx, "/movies/public", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, movieDTO.toDomain), nil
}

func (c *Client) GetMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	var out movieDTO
	if err := c.getJSON(ctx, "/movies/"+url.PathEscape(movieID), nil, &out); err != nil {
		return nil, err
	}
	m := out.toDomain()
	return &m, nil
}

func (c *Client) ListTheaters(ctx context.Context) ([]domain.Theater, error) {
	var out []theaterDTO
	if err := c.getJSON(ctx, "/theaters", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, theaterDTO.toDomain), nil
}

func (c *Client) GetTheater(ctx context.Context, theaterID string) (*domain.Theater, error) {
	var out theaterDTO
	if err := c.getJSON(ctx, "/theaters/"+url.PathEscape(theaterID), nil, &out); err != nil {
		return nil, err
	}
	t := out.toDomain()
	return &t, nil
}

func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var out []roomDTO
	if err := c.getJSON(ctx, "/rooms", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, roomDTO.toDomain), nil
}

func (c *Client) ListPublicScreenings(ctx context.Context, theaterID, movieID string) ([]domain.Screening, error) {
	q := url.Values{}
	if theaterID != "" {
		q.Set("theaterId", theaterID)
	}
	if movieID != "" {
		q.Set("movieId", movieID)
	}
	var out []screeningDTO
	if err := c.getJSON(ctx, "/screenings/public", q, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, screeningDTO.toDomain), nil
}

func (c *Client) GetScreening(ctx context.Context, screeningID string) (*domain.Screening, error) {
	var out screeningDTO
	if err := c.getJSON(ctx, "/screenings/"+url.PathEscape(screeningID), nil, &out); err != nil {
		return nil, err
	}
	s := out.toDomain()
	return &s, nil
}

func (c *Client) GetScreeningSeats(ctx context.Context, screeningID string) ([]domain.Seat, error) {
	var out []seatDTO
	if err := c.getJSON(ctx, "/seats/screening/"+url.PathEscape(screeningID), nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, seatDTO.toDomain), nil
}
