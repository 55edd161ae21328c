package domain

import (
	"strings"
	"time"
)

type MovieStatus string

const (
	MovieComingSoon MovieStatus = "coming-soon"
	MovieNowShowing MovieStatus = "now-showing"
	MovieEnded      MovieStatus = "ended"
)

type Movie struct {
	ID            string
	Title         string
	OriginalTitle string
	Genre         string
	Duration      int
	ReleaseDate   time.Time
	Director      string
	Cast          []string
	Description   string
	PosterURL     string
	TrailerURL    string
	Rating        float64
	VoteCount     int
	Status        MovieStatus
}

// Genres splits the comma-separated genre field.
func (m Movie) Genres() []string {
	var out []string
	for _, g := range strings.Split(m.Genre, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

type Theater struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	IsActive    bool
	ScreenCount int
}

type Room struct {
	ID        string
	TheaterID string
	Name      string
	Capacity  int
}
