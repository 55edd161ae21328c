package domain

import (
	"sort"
	"time"
)

type Screening struct {
	ID        string
	MovieID   string
	TheaterID string
	Room      string
	StartTime time.Time
	EndTime   time.Time
	Price     int64
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// ShowtimesByDate returns the screenings starting on the calendar day of
// day, in day's location, sorted by start time.
func ShowtimesByDate(screenings []Screening, day time.Time) []Screening {
	var out []Screening
	for _, s := range screenings {
		if sameDay(day, s.StartTime) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// ScreeningDates returns the distinct calendar days, at midnight in loc, on
// which at least one screening starts, ascending.
func ScreeningDates(screenings []Screening, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, s := range screenings {
		t := s.StartTime.In(loc)
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
