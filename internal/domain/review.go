package domain

import "time"

// MaxReviewLength is the longest comment a review may carry.
const MaxReviewLength = 300

// Review is a user's comment on a tour they booked. Reviews are immutable.
type Review struct {
	ID        int64     `json:"id"`
	TourID    int64     `json:"tour_id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment" validate:"required,max=300"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewView is a review annotated with the reviewer's display name.
type ReviewView struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
