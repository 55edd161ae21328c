package domain

import "time"

const (
	MinRating = 0
	MaxRating = 10
)

// MovieReview is a device-local comment. Rating is the author's current
// rating at the time the comment was written, 0 when none.
type MovieReview struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	MovieID     string    `json:"movieId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	AuthorName  string    `json:"authorName,omitempty"`
	AuthorEmail string    `json:"authorEmail,omitempty"`
	Anonymous   bool      `json:"anonymous"`
	ImageRef    string    `json:"imageRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r MovieReview) DisplayName() string {
	if r.Anonymous {
		return "Anonymous"
	}
	if r.AuthorName != "" {
		return r.AuthorName
	}
	return r.AuthorEmail
}

func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}
